package session

import (
	"interview-planner/core/config"
	"interview-planner/core/docstore"
	"interview-planner/core/middleware"
	"interview-planner/modules/session/controller"
	"interview-planner/modules/session/repository"
	"interview-planner/modules/session/router"
	"interview-planner/modules/session/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, backend docstore.Backend) service.SessionService {
	store := repository.NewDocumentStore(backend)
	svc := service.NewSessionService(store)

	ctrl := controller.NewSessionController(svc)
	mw := middleware.NewMiddleware(config.Get())
	router.NewSessionRouter(ctrl).Setup(e, mw)

	return svc
}
