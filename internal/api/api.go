package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/gcouto/combustiveis-bh/internal/api/controller"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
	"github.com/gcouto/combustiveis-bh/internal/pkg/logger"
	"github.com/gcouto/combustiveis-bh/internal/service/dataset"
	"github.com/gcouto/combustiveis-bh/internal/service/stats"
)

type APIService struct {
	router  *echo.Echo
	session *stats.Session
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(session *stats.Session, report *dataset.LoadReport) (*APIService, error) {
	svc := &APIService{router: echo.New(), session: session}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.Logger())
	svc.router.Use(requestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT},
		AllowHeaders: []string{"Content-Type"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(session, report)

	chapters := api.Group("/chapters")
	chapters.GET("", cntrl.ListChapters)
	chapters.GET("/:id", cntrl.GetChapter)

	filters := api.Group("/filters")
	filters.PUT("", cntrl.UpdateFilters)
	filters.GET("/options", cntrl.GetFilterOptions)

	ds := api.Group("/dataset")
	ds.GET("/report", cntrl.GetLoadReport)

	return svc, nil
}
