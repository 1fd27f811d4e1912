package router

import (
	"interview-planner/core/middleware"
	"interview-planner/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	controller *controller.BookingController
}

func NewBookingRouter(controller *controller.BookingController) *BookingRouter {
	return &BookingRouter{
		controller: controller,
	}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	bookingRoutes := v1.Group("/private/bookings")
	bookingRoutes.Use(mw.AuthMiddleware())

	bookingRoutes.GET("/free-slots", r.controller.GetFreeSlots)
	bookingRoutes.POST("", r.controller.BookSlot)
}
