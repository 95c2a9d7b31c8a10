package common

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/metrics"
	"github.com/clawpad/clawpad/orm"
)

type HandlerRegistrar interface {
	Register(router fiber.Router)
}

// BaseHandler carries the dependencies shared by every handler.
// The database is nil when the service runs without DB_DSN.
type BaseHandler struct {
	db     *orm.Database
	cfg    *config.Config
	logger *slog.Logger
}

func NewBaseHandler(db *orm.Database, cfg *config.Config, logger *slog.Logger) *BaseHandler {
	return &BaseHandler{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

func (h *BaseHandler) GetDatabase() *orm.Database { return h.db }
func (h *BaseHandler) GetConfig() *config.Config  { return h.cfg }
func (h *BaseHandler) GetLogger() *slog.Logger    { return h.logger }

// TrackError tracks errors in handlers
func (h *BaseHandler) TrackError(errorType string) {
	metrics.TrackError("api", errorType)
}
