package sqldb

import (
	"context"
	"database/sql"

	"foodiefinds/internal/database"
	"foodiefinds/internal/model"
	"foodiefinds/internal/repository"
)

const (
	qRestaurantsAll      = `SELECT * FROM "restaurants"`
	qRestaurantsByID     = `SELECT * FROM "restaurants" WHERE "id" = ?`
	qRestaurantsCuisine  = `SELECT * FROM "restaurants" WHERE "cuisine" = ?`
	qRestaurantsFilter   = `SELECT * FROM "restaurants" WHERE "isVeg" = ? AND "hasOutdoorSeating" = ? AND "isLuxury" = ?`
	qRestaurantsByRating = `SELECT * FROM "restaurants" ORDER BY "rating" DESC`
)

// RestaurantStore is a database/sql implementation of repository.RestaurantRepository.
type RestaurantStore struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewRestaurantStore creates a RestaurantStore over a shared handle.
func NewRestaurantStore(db *sql.DB, d database.Dialect) *RestaurantStore {
	return &RestaurantStore{db: db, dialect: d}
}

var _ repository.RestaurantRepository = (*RestaurantStore)(nil)

func (s *RestaurantStore) List(ctx context.Context) ([]model.Restaurant, error) {
	return s.query(ctx, "restaurants_all", qRestaurantsAll)
}

func (s *RestaurantStore) FindByID(ctx context.Context, id any) ([]model.Restaurant, error) {
	return s.query(ctx, "restaurants_by_id", qRestaurantsByID, id)
}

func (s *RestaurantStore) FindByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	return s.query(ctx, "restaurants_by_cuisine", qRestaurantsCuisine, cuisine)
}

func (s *RestaurantStore) Filter(ctx context.Context, f repository.RestaurantFilter) ([]model.Restaurant, error) {
	return s.query(ctx, "restaurants_filter", qRestaurantsFilter, f.IsVeg, f.HasOutdoorSeating, f.IsLuxury)
}

func (s *RestaurantStore) ListByRating(ctx context.Context) ([]model.Restaurant, error) {
	return s.query(ctx, "restaurants_by_rating", qRestaurantsByRating)
}

func (s *RestaurantStore) query(ctx context.Context, name, q string, args ...any) ([]model.Restaurant, error) {
	rows, err := selectRows(ctx, s.db, s.dialect, name, q, args...)
	if err != nil {
		return nil, err
	}
	out := make([]model.Restaurant, len(rows))
	for i, r := range rows {
		out[i] = model.Restaurant{Row: r}
	}
	return out, nil
}
