package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"procurement-api/pkg/api"
	apperrors "procurement-api/pkg/errors"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db     Pinger
	logger *zap.Logger
}

func NewHealthController(db Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

func (c *HealthController) Health(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusServiceUnavailable, "Database is unavailable", err, nil),
			c.logger,
		)
	}
	return api.SuccessOne(ctx, http.StatusOK, "OK", map[string]string{"status": "healthy"})
}
