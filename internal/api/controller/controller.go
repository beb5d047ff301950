package controller

import (
	"github.com/gcouto/combustiveis-bh/internal/service/dataset"
	"github.com/gcouto/combustiveis-bh/internal/service/stats"
)

type Controller struct {
	session *stats.Session
	report  *dataset.LoadReport
}

func NewController(session *stats.Session, report *dataset.LoadReport) *Controller {
	return &Controller{session: session, report: report}
}
