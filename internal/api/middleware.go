package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gcouto/combustiveis-bh/internal/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// requestIDMiddleware tags every request with an id carried both in the
// response header and in the request context for log correlation.
func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(context.WithValue(req.Context(), logger.CtxKeyRequestID, id)))
		ctx.Response().Header().Set(headerRequestID, id)
		return next(ctx)
	}
}
