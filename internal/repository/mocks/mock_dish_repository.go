package mocks

import (
	"context"

	"foodiefinds/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) rows(args mock.Arguments) ([]model.Dish, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishRepository) List(ctx context.Context) ([]model.Dish, error) {
	return m.rows(m.Called(ctx))
}

func (m *MockDishRepository) FindByID(ctx context.Context, id any) ([]model.Dish, error) {
	return m.rows(m.Called(ctx, id))
}

func (m *MockDishRepository) Filter(ctx context.Context, isVeg any) ([]model.Dish, error) {
	return m.rows(m.Called(ctx, isVeg))
}

func (m *MockDishRepository) ListByPrice(ctx context.Context) ([]model.Dish, error) {
	return m.rows(m.Called(ctx))
}
