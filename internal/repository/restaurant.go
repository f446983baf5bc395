package repository

import (
	"context"

	"foodiefinds/internal/model"
)

// RestaurantRepository reads the restaurants table. Every method issues
// exactly one SELECT and returns rows in the order the database yields them.
type RestaurantRepository interface {
	// List returns every restaurant.
	List(ctx context.Context) ([]model.Restaurant, error)

	// FindByID returns the restaurants whose id equals id. id may be
	// NullParam, in which case nothing matches.
	FindByID(ctx context.Context, id any) ([]model.Restaurant, error)

	// FindByCuisine matches cuisine exactly (case-sensitive).
	FindByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error)

	// Filter binds the three flags as given, without coercion.
	Filter(ctx context.Context, f RestaurantFilter) ([]model.Restaurant, error)

	// ListByRating returns every restaurant ordered by rating, highest first.
	ListByRating(ctx context.Context) ([]model.Restaurant, error)
}

// RestaurantFilter carries raw query-string values. A nil field binds NULL.
type RestaurantFilter struct {
	IsVeg             any
	HasOutdoorSeating any
	IsLuxury          any
}
