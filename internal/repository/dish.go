package repository

import (
	"context"

	"foodiefinds/internal/model"
)

// DishRepository reads the dishes table.
type DishRepository interface {
	List(ctx context.Context) ([]model.Dish, error)
	FindByID(ctx context.Context, id any) ([]model.Dish, error)
	// Filter binds isVeg as given, without coercion.
	Filter(ctx context.Context, isVeg any) ([]model.Dish, error)
	// ListByPrice returns every dish ordered by price, cheapest first.
	ListByPrice(ctx context.Context) ([]model.Dish, error)
}
