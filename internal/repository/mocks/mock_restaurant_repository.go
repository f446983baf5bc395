package mocks

import (
	"context"

	"foodiefinds/internal/model"
	"foodiefinds/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) rows(args mock.Arguments) ([]model.Restaurant, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	return m.rows(m.Called(ctx))
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id any) ([]model.Restaurant, error) {
	return m.rows(m.Called(ctx, id))
}

func (m *MockRestaurantRepository) FindByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	return m.rows(m.Called(ctx, cuisine))
}

func (m *MockRestaurantRepository) Filter(ctx context.Context, f repository.RestaurantFilter) ([]model.Restaurant, error) {
	return m.rows(m.Called(ctx, f))
}

func (m *MockRestaurantRepository) ListByRating(ctx context.Context) ([]model.Restaurant, error) {
	return m.rows(m.Called(ctx))
}
