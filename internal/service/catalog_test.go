package service

import (
	"context"
	"errors"
	"testing"

	"foodiefinds/internal/model"
	"foodiefinds/internal/repository"
	repoMocks "foodiefinds/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
)

func restaurant(id int64, rating float64) model.Restaurant {
	return model.Restaurant{Row: model.NewRow([]string{"id", "rating"}, []any{id, rating})}
}

func dish(id int64, price float64) model.Dish {
	return model.Dish{Row: model.NewRow([]string{"id", "price"}, []any{id, price})}
}

func strPtr(s string) *string { return &s }

func TestCatalogService_Restaurants(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("SQLITE_ERROR: no such table: restaurants")

	tests := []struct {
		name       string
		setupMocks func(m *repoMocks.MockRestaurantRepository)
		call       func(s CatalogService) ([]model.Restaurant, error)
		wantLen    int
		wantErr    error
	}{
		{
			name: "list",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("List", ctx).Return([]model.Restaurant{restaurant(1, 4.5), restaurant(2, 3.0)}, nil)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.ListRestaurants(ctx) },
			wantLen: 2,
		},
		{
			name: "list empty is not found",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("List", ctx).Return([]model.Restaurant{}, nil)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.ListRestaurants(ctx) },
			wantErr: ErrNotFound,
		},
		{
			name: "list repository error passes through",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("List", ctx).Return(nil, dbErr)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.ListRestaurants(ctx) },
			wantErr: dbErr,
		},
		{
			name: "get by numeric id",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("FindByID", ctx, int64(12)).Return([]model.Restaurant{restaurant(12, 4.0)}, nil)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.GetRestaurant(ctx, "12abc") },
			wantLen: 1,
		},
		{
			name: "get by non-numeric id binds null",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("FindByID", ctx, nil).Return([]model.Restaurant{}, nil)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.GetRestaurant(ctx, "abc") },
			wantErr: ErrNotFound,
		},
		{
			name: "by cuisine",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("FindByCuisine", ctx, "Italian").Return([]model.Restaurant{restaurant(1, 4.5)}, nil)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.RestaurantsByCuisine(ctx, "Italian") },
			wantLen: 1,
		},
		{
			name: "filter binds raw values and null for absent ones",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("Filter", ctx, repository.RestaurantFilter{IsVeg: "true", HasOutdoorSeating: "0", IsLuxury: nil}).
					Return([]model.Restaurant{}, nil)
			},
			call: func(s CatalogService) ([]model.Restaurant, error) {
				return s.FilterRestaurants(ctx, RestaurantFilter{IsVeg: strPtr("true"), HasOutdoorSeating: strPtr("0")})
			},
			wantErr: ErrNotFound,
		},
		{
			name: "by rating",
			setupMocks: func(m *repoMocks.MockRestaurantRepository) {
				m.On("ListByRating", ctx).Return([]model.Restaurant{restaurant(2, 4.9), restaurant(1, 4.5)}, nil)
			},
			call:    func(s CatalogService) ([]model.Restaurant, error) { return s.RestaurantsByRating(ctx) },
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRestaurantRepository)
			svc := NewCatalogService(mRepo, nil)

			tt.setupMocks(mRepo)

			got, err := tt.call(svc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Dishes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(m *repoMocks.MockDishRepository)
		call       func(s CatalogService) ([]model.Dish, error)
		wantLen    int
		wantErr    error
	}{
		{
			name: "list",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("List", ctx).Return([]model.Dish{dish(1, 10)}, nil)
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.ListDishes(ctx) },
			wantLen: 1,
		},
		{
			name: "get by id",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("FindByID", ctx, int64(1)).Return([]model.Dish{dish(1, 10)}, nil)
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.GetDish(ctx, "1") },
			wantLen: 1,
		},
		{
			name: "get missing id",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("FindByID", ctx, int64(999)).Return([]model.Dish{}, nil)
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.GetDish(ctx, "999") },
			wantErr: ErrNotFound,
		},
		{
			name: "filter raw value",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("Filter", ctx, "false").Return([]model.Dish{dish(2, 5)}, nil)
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.FilterDishes(ctx, strPtr("false")) },
			wantLen: 1,
		},
		{
			name: "filter absent value binds null",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("Filter", ctx, nil).Return([]model.Dish{}, nil)
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.FilterDishes(ctx, nil) },
			wantErr: ErrNotFound,
		},
		{
			name: "by price",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("ListByPrice", ctx).Return([]model.Dish{dish(2, 5), dish(1, 10)}, nil)
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.DishesByPrice(ctx) },
			wantLen: 2,
		},
		{
			name: "by price error",
			setupMocks: func(m *repoMocks.MockDishRepository) {
				m.On("ListByPrice", ctx).Return(nil, errors.New("database is locked"))
			},
			call:    func(s CatalogService) ([]model.Dish, error) { return s.DishesByPrice(ctx) },
			wantErr: errors.New("database is locked"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDishRepository)
			svc := NewCatalogService(nil, mRepo)

			tt.setupMocks(mRepo)

			got, err := tt.call(svc)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
