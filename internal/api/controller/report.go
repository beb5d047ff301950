package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetLoadReport(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.report)
}
