package api

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/clawpad/clawpad/api/docs"
	"github.com/clawpad/clawpad/api/handler"
	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/api/handler/solana"
	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/orm"
)

type Api struct {
	app    *fiber.App
	cfg    *config.Config
	logger *slog.Logger
	db     *orm.Database
}

// @title Clawpad API
// @version 1.0
// @description Solana data proxy and agent leaderboard for the Clawpad launchpad
// @BasePath /

// @tag.name Solana
// @tag.description Upstream Solana, price and token metadata lookups

// @tag.name Leaderboard
// @tag.description Agents, tokens and platform statistics

// @tag.name App
// @tag.description Service status
func New(cfg *config.Config, logger *slog.Logger, db *orm.Database, upstream solana.Upstream) *Api {
	app := fiber.New(fiber.Config{
		AppName:               "Clawpad API",
		DisableStartupMessage: true,
		ErrorHandler:          common.ErrorHandler,
	})

	app.Use(recoverMiddleware(logger))
	app.Use(metricsMiddleware())
	addCORS(app, cfg, logger)
	addRateLimit(app, cfg, logger)

	app.Get("/health", health)

	handler.Register(app, db, cfg, logger, upstream)

	// Swagger documentation
	swaggerConfig := swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
		TagsSorter: template.JS(`function(a, b) {
			const order = ["Solana", "Leaderboard", "App"];
			return order.indexOf(a) - order.indexOf(b);
		}`),
	}
	app.Get("/swagger/*", swagger.New(swaggerConfig))

	return &Api{
		app:    app,
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

// App exposes the fiber app for tests.
func (a *Api) App() *fiber.App {
	return a.app
}

// Start blocks until the server stops.
func (a *Api) Start() error {
	port := a.cfg.GetListenPort()

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", port)
	docs.SwaggerInfo.Title = "Clawpad API"
	docs.SwaggerInfo.Description = "Clawpad API"

	a.logger.Info("starting API server",
		slog.String("addr", fmt.Sprintf("http://localhost:%s", port)),
		slog.Bool("leaderboard", a.db != nil))

	return a.app.Listen(":" + port)
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// health handles GET /health
// @Summary Health check
// @Tags App
// @Success 200 "OK"
// @Router /health [get]
func health(c *fiber.Ctx) error {
	return c.SendString("OK")
}
