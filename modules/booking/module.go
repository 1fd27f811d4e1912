package booking

import (
	"interview-planner/core/config"
	"interview-planner/core/docstore"
	"interview-planner/core/middleware"
	"interview-planner/modules/booking/controller"
	bookingService "interview-planner/modules/booking/service"
	"interview-planner/modules/booking/router"
	"interview-planner/modules/session/repository"
	sessionService "interview-planner/modules/session/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, backend docstore.Backend, sessionSvc sessionService.SessionService) {
	store := repository.NewDocumentStore(backend)

	bookingSvc := bookingService.NewBookingService(store, sessionSvc)

	ctrl := controller.NewBookingController(bookingSvc)
	mw := middleware.NewMiddleware(config.Get())
	router.NewBookingRouter(ctrl).Setup(e, mw)
}
