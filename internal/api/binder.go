package api

import (
	"github.com/labstack/echo/v4"

	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
)

type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

// Bind wraps the default binder and maps its failures onto the shared 400
// error, then validates the bound struct.
func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.base.Bind(i, ctx); err != nil {
		return constants.ErrBadRequest
	}
	return ctx.Validate(i)
}
