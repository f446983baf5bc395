package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foodiefinds/internal/service"
)

// RegisterRoutes attaches the catalog and operational routes.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.CatalogService, banner string) {
	app.Get("/", Banner(banner))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	restaurants := app.Group("/restaurants")
	restaurants.Get("", ListRestaurants(svc))
	restaurants.Get("/details/:id", GetRestaurant(svc))
	restaurants.Get("/cuisine/:cuisine", RestaurantsByCuisine(svc))
	restaurants.Get("/filter", FilterRestaurants(svc))
	restaurants.Get("/sort-by-rating", RestaurantsByRating(svc))

	dishes := app.Group("/dishes")
	dishes.Get("", ListDishes(svc))
	dishes.Get("/details/:id", GetDish(svc))
	dishes.Get("/filter", FilterDishes(svc))
	dishes.Get("/sort-by-price", DishesByPrice(svc))
}

// RegisterMetrics exposes the gatherer in the Prometheus text format.
func RegisterMetrics(app *fiber.App, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
