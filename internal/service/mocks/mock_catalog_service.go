package mocks

import (
	"context"

	"foodiefinds/internal/model"
	"foodiefinds/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func restaurants(args mock.Arguments) ([]model.Restaurant, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func dishes(args mock.Arguments) ([]model.Dish, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockCatalogService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	return restaurants(m.Called(ctx))
}

func (m *MockCatalogService) GetRestaurant(ctx context.Context, rawID string) ([]model.Restaurant, error) {
	return restaurants(m.Called(ctx, rawID))
}

func (m *MockCatalogService) RestaurantsByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	return restaurants(m.Called(ctx, cuisine))
}

func (m *MockCatalogService) FilterRestaurants(ctx context.Context, f service.RestaurantFilter) ([]model.Restaurant, error) {
	return restaurants(m.Called(ctx, f))
}

func (m *MockCatalogService) RestaurantsByRating(ctx context.Context) ([]model.Restaurant, error) {
	return restaurants(m.Called(ctx))
}

func (m *MockCatalogService) ListDishes(ctx context.Context) ([]model.Dish, error) {
	return dishes(m.Called(ctx))
}

func (m *MockCatalogService) GetDish(ctx context.Context, rawID string) ([]model.Dish, error) {
	return dishes(m.Called(ctx, rawID))
}

func (m *MockCatalogService) FilterDishes(ctx context.Context, isVeg *string) ([]model.Dish, error) {
	return dishes(m.Called(ctx, isVeg))
}

func (m *MockCatalogService) DishesByPrice(ctx context.Context) ([]model.Dish, error) {
	return dishes(m.Called(ctx))
}
