package service

import (
	"context"
	"errors"

	"foodiefinds/internal/model"
	"foodiefinds/internal/repository"
)

// ErrNotFound is returned when a lookup yields no rows.
var ErrNotFound = errors.New("not found")

// CatalogService defines the read-only lookups over restaurants and dishes.
// Every method returns the matched rows, ErrNotFound when there are none,
// or the repository error unchanged.
type CatalogService interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	// GetRestaurant takes the raw path segment and parses it with ParseID.
	GetRestaurant(ctx context.Context, rawID string) ([]model.Restaurant, error)
	RestaurantsByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error)
	FilterRestaurants(ctx context.Context, f RestaurantFilter) ([]model.Restaurant, error)
	RestaurantsByRating(ctx context.Context) ([]model.Restaurant, error)

	ListDishes(ctx context.Context) ([]model.Dish, error)
	GetDish(ctx context.Context, rawID string) ([]model.Dish, error)
	FilterDishes(ctx context.Context, isVeg *string) ([]model.Dish, error)
	DishesByPrice(ctx context.Context) ([]model.Dish, error)
}

// RestaurantFilter holds the raw query-string flags. A nil pointer means
// the parameter was absent from the request.
type RestaurantFilter struct {
	IsVeg             *string
	HasOutdoorSeating *string
	IsLuxury          *string
}

type catalogService struct {
	restaurants repository.RestaurantRepository
	dishes      repository.DishRepository
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(restaurants repository.RestaurantRepository, dishes repository.DishRepository) CatalogService {
	return &catalogService{restaurants: restaurants, dishes: dishes}
}

func (s *catalogService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	items, err := s.restaurants.List(ctx)
	return nonEmpty(items, err)
}

func (s *catalogService) GetRestaurant(ctx context.Context, rawID string) ([]model.Restaurant, error) {
	items, err := s.restaurants.FindByID(ctx, idParam(rawID))
	return nonEmpty(items, err)
}

func (s *catalogService) RestaurantsByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	items, err := s.restaurants.FindByCuisine(ctx, cuisine)
	return nonEmpty(items, err)
}

func (s *catalogService) FilterRestaurants(ctx context.Context, f RestaurantFilter) ([]model.Restaurant, error) {
	items, err := s.restaurants.Filter(ctx, repository.RestaurantFilter{
		IsVeg:             rawParam(f.IsVeg),
		HasOutdoorSeating: rawParam(f.HasOutdoorSeating),
		IsLuxury:          rawParam(f.IsLuxury),
	})
	return nonEmpty(items, err)
}

func (s *catalogService) RestaurantsByRating(ctx context.Context) ([]model.Restaurant, error) {
	items, err := s.restaurants.ListByRating(ctx)
	return nonEmpty(items, err)
}

func (s *catalogService) ListDishes(ctx context.Context) ([]model.Dish, error) {
	items, err := s.dishes.List(ctx)
	return nonEmpty(items, err)
}

func (s *catalogService) GetDish(ctx context.Context, rawID string) ([]model.Dish, error) {
	items, err := s.dishes.FindByID(ctx, idParam(rawID))
	return nonEmpty(items, err)
}

func (s *catalogService) FilterDishes(ctx context.Context, isVeg *string) ([]model.Dish, error) {
	items, err := s.dishes.Filter(ctx, rawParam(isVeg))
	return nonEmpty(items, err)
}

func (s *catalogService) DishesByPrice(ctx context.Context) ([]model.Dish, error) {
	items, err := s.dishes.ListByPrice(ctx)
	return nonEmpty(items, err)
}

func nonEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func idParam(raw string) any {
	id, ok := ParseID(raw)
	if !ok {
		return repository.NullParam
	}
	return id
}

func rawParam(v *string) any {
	if v == nil {
		return repository.NullParam
	}
	return *v
}
