package handler

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"foodiefinds/internal/service"
)

// queryParam returns the raw value of a query-string parameter, or nil when
// the parameter is absent. An empty value (?isVeg=) is kept as "".
func queryParam(c *fiber.Ctx, name string) *string {
	if !c.Context().QueryArgs().Has(name) {
		return nil
	}
	v := c.Query(name)
	return &v
}

func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// ListRestaurants godoc
// @Summary List all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /restaurants [get]
func ListRestaurants(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListRestaurants(c.UserContext())
		return respond(c, "restaurants", "No restaurants found.", items, err)
	}
}

// GetRestaurant godoc
// @Summary Get a restaurant by id
// @Description Non-numeric ids match nothing and yield 404.
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /restaurants/details/{id} [get]
func GetRestaurant(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.GetRestaurant(c.UserContext(), c.Params("id"))
		return respond(c, "restaurant", "No restaurant by this id found.", items, err)
	}
}

// RestaurantsByCuisine godoc
// @Summary List restaurants by cuisine (exact, case-sensitive)
// @Tags restaurants
// @Produce json
// @Param cuisine path string true "Cuisine"
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /restaurants/cuisine/{cuisine} [get]
func RestaurantsByCuisine(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cuisine := pathParam(c, "cuisine")
		items, err := svc.RestaurantsByCuisine(c.UserContext(), cuisine)
		return respond(c, "restaurants", fmt.Sprintf("No restaurant with %s cuisine found.", cuisine), items, err)
	}
}

// FilterRestaurants godoc
// @Summary Filter restaurants by flags
// @Description Values are compared as given; no boolean conversion is applied.
// @Tags restaurants
// @Produce json
// @Param isVeg query string false "isVeg"
// @Param hasOutdoorSeating query string false "hasOutdoorSeating"
// @Param isLuxury query string false "isLuxury"
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /restaurants/filter [get]
func FilterRestaurants(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.FilterRestaurants(c.UserContext(), service.RestaurantFilter{
			IsVeg:             queryParam(c, "isVeg"),
			HasOutdoorSeating: queryParam(c, "hasOutdoorSeating"),
			IsLuxury:          queryParam(c, "isLuxury"),
		})
		return respond(c, "restaurants", "No restaurant with given filter found.", items, err)
	}
}

// RestaurantsByRating godoc
// @Summary List restaurants, highest rating first
// @Tags restaurants
// @Produce json
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /restaurants/sort-by-rating [get]
func RestaurantsByRating(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.RestaurantsByRating(c.UserContext())
		return respond(c, "restaurants", "No restaurant found.", items, err)
	}
}

// ListDishes godoc
// @Summary List all dishes
// @Tags dishes
// @Produce json
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /dishes [get]
func ListDishes(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListDishes(c.UserContext())
		return respond(c, "dishes", "No dish found.", items, err)
	}
}

// GetDish godoc
// @Summary Get a dish by id
// @Tags dishes
// @Produce json
// @Param id path string true "Dish ID"
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /dishes/details/{id} [get]
func GetDish(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.GetDish(c.UserContext(), c.Params("id"))
		return respond(c, "dish", "No dish by this id found.", items, err)
	}
}

// FilterDishes godoc
// @Summary Filter dishes by isVeg
// @Tags dishes
// @Produce json
// @Param isVeg query string false "isVeg"
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /dishes/filter [get]
func FilterDishes(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.FilterDishes(c.UserContext(), queryParam(c, "isVeg"))
		return respond(c, "dishes", "No dish with this filter found.", items, err)
	}
}

// DishesByPrice godoc
// @Summary List dishes, cheapest first
// @Tags dishes
// @Produce json
// @Success 200 {object} map[string][]object
// @Failure 404 {object} messagePayload
// @Failure 500 {object} errorPayload
// @Router /dishes/sort-by-price [get]
func DishesByPrice(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.DishesByPrice(c.UserContext())
		return respond(c, "dishes", "No dish found.", items, err)
	}
}
