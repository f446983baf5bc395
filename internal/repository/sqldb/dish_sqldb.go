package sqldb

import (
	"context"
	"database/sql"

	"foodiefinds/internal/database"
	"foodiefinds/internal/model"
	"foodiefinds/internal/repository"
)

const (
	qDishesAll     = `SELECT * FROM "dishes"`
	qDishesByID    = `SELECT * FROM "dishes" WHERE "id" = ?`
	qDishesFilter  = `SELECT * FROM "dishes" WHERE "isVeg" = ?`
	qDishesByPrice = `SELECT * FROM "dishes" ORDER BY "price" ASC`
)

// DishStore is a database/sql implementation of repository.DishRepository.
type DishStore struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewDishStore(db *sql.DB, d database.Dialect) *DishStore {
	return &DishStore{db: db, dialect: d}
}

var _ repository.DishRepository = (*DishStore)(nil)

func (s *DishStore) List(ctx context.Context) ([]model.Dish, error) {
	return s.query(ctx, "dishes_all", qDishesAll)
}

func (s *DishStore) FindByID(ctx context.Context, id any) ([]model.Dish, error) {
	return s.query(ctx, "dishes_by_id", qDishesByID, id)
}

func (s *DishStore) Filter(ctx context.Context, isVeg any) ([]model.Dish, error) {
	return s.query(ctx, "dishes_filter", qDishesFilter, isVeg)
}

func (s *DishStore) ListByPrice(ctx context.Context) ([]model.Dish, error) {
	return s.query(ctx, "dishes_by_price", qDishesByPrice)
}

func (s *DishStore) query(ctx context.Context, name, q string, args ...any) ([]model.Dish, error) {
	rows, err := selectRows(ctx, s.db, s.dialect, name, q, args...)
	if err != nil {
		return nil, err
	}
	out := make([]model.Dish, len(rows))
	for i, r := range rows {
		out[i] = model.Dish{Row: r}
	}
	return out, nil
}
