package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func (c *Controller) ListChapters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.Chapters)
}

func (c *Controller) GetChapter(ctx echo.Context) error {
	id := domain.Chapter(ctx.Param("id"))

	view, err := c.session.Chapter(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}
