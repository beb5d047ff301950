package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
)

func (c *Controller) UpdateFilters(ctx echo.Context) error {
	var sel domain.FilterSelection
	if err := ctx.Bind(&sel); err != nil {
		return constants.ErrBadFilter
	}

	records, generation := c.session.SetSelection(ctx.Request().Context(), sel)

	type response struct {
		Selection  domain.FilterSelection `json:"selection"`
		Records    int                    `json:"records"`
		Generation string                 `json:"generation"`
	}

	return ctx.JSON(http.StatusOK, response{
		Selection:  sel,
		Records:    records,
		Generation: generation,
	})
}

func (c *Controller) GetFilterOptions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.session.Options())
}
