package main

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"foodiefinds/docs"
	"foodiefinds/internal/database"
	"foodiefinds/internal/database/schema"
	handlers "foodiefinds/internal/http/handler"
	"foodiefinds/internal/http/middleware"
	"foodiefinds/internal/otel"
	"foodiefinds/internal/repository/sqldb"
	"foodiefinds/internal/service"
)

const shutdownTimeout = 10 * time.Second

type appDeps struct {
	log      *zap.Logger
	db       *sql.DB
	dialect  database.Dialect
	banner   string
	registry prometheus.Registerer
	gatherer prometheus.Gatherer
}

// newApp assembles the Fiber application: middleware, catalog routes,
// metrics and Swagger UI.
func newApp(d appDeps) (*fiber.App, error) {
	catalog := service.NewCatalogService(
		sqldb.NewRestaurantStore(d.db, d.dialect),
		sqldb.NewDishStore(d.db, d.dialect),
	)

	metrics, err := middleware.NewPrometheusMiddleware(d.registry)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(d.log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, d.db, catalog, d.banner)
	handlers.RegisterMetrics(app, d.gatherer)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}

func serve(ctx context.Context) error {
	ctx = contextOrBackground(ctx)

	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeAll(log, db)

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	// Missing tables are not fatal: the affected routes answer 500 until
	// the table exists.
	schema.Inspect(ctx, db, log, schema.CatalogTables...)

	app, err := newApp(appDeps{
		log:      log,
		db:       db,
		dialect:  database.DialectFor(cfg.Database.Driver),
		banner:   cfg.Banner,
		registry: prometheus.DefaultRegisterer,
		gatherer: prometheus.DefaultGatherer,
	})
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	log.Info("server_started", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("server_stopping")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}
