package api

import (
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

type Serializer struct {
	api sonic.API
}

func NewSerializer() *Serializer {
	return &Serializer{api: sonic.ConfigDefault}
}

func (s *Serializer) Serialize(ctx echo.Context, i interface{}, indent string) error {
	enc := s.api.NewEncoder(ctx.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *Serializer) Deserialize(ctx echo.Context, i interface{}) error {
	return s.api.NewDecoder(ctx.Request().Body).Decode(i)
}
