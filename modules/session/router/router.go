package router

import (
	"interview-planner/core/middleware"
	"interview-planner/modules/session/controller"

	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	controller *controller.SessionController
}

func NewSessionRouter(controller *controller.SessionController) *SessionRouter {
	return &SessionRouter{
		controller: controller,
	}
}

func (r *SessionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	sessionRoutes := v1.Group("/private/sessions")
	sessionRoutes.Use(mw.AuthMiddleware())

	sessionRoutes.POST("", r.controller.CreateSession)
	sessionRoutes.GET("", r.controller.GetOverview)
	sessionRoutes.GET("/title", r.controller.GetTitle)
	sessionRoutes.GET("/dates", r.controller.GetDates)
	sessionRoutes.GET("/days", r.controller.GetDays)
}
