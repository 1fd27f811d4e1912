package router

import (
	"interview-planner/core/middleware"
	"interview-planner/modules/report/controller"

	"github.com/labstack/echo/v4"
)

type ReportRouter struct {
	controller *controller.ReportController
}

func NewReportRouter(controller *controller.ReportController) *ReportRouter {
	return &ReportRouter{
		controller: controller,
	}
}

func (r *ReportRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	reportRoutes := v1.Group("/private/reports")
	reportRoutes.Use(mw.AuthMiddleware())

	reportRoutes.GET("", r.controller.GetReport)
	reportRoutes.POST("/export", r.controller.ExportReport)
}
