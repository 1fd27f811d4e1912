package controller

import (
	"interview-planner/core/controller"
	"interview-planner/core/errors"
	"interview-planner/modules/session/dto"
	"interview-planner/modules/session/service"

	"github.com/labstack/echo/v4"
)

type SessionController struct {
	controller.BaseController
	SessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{
		BaseController: controller.NewBaseController(),
		SessionService: sessionService,
	}
}

// CreateSession generates and persists a new interview session.
// POST /api/v1/private/sessions
func (c *SessionController) CreateSession(ctx echo.Context) error {
	requestData := new(dto.CreateSessionRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := c.SessionService.BuildSession(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "interview session created")
}

// GetOverview returns the combined session view.
// GET /api/v1/private/sessions
func (c *SessionController) GetOverview(ctx echo.Context) error {
	result, appErr := c.SessionService.Overview(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "get session success")
}

// GetTitle returns the project title.
// GET /api/v1/private/sessions/title
func (c *SessionController) GetTitle(ctx echo.Context) error {
	title, appErr := c.SessionService.ProjectTitle(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, map[string]string{"title": title}, "get title success")
}

// GetDates returns the ordered session dates.
// GET /api/v1/private/sessions/dates
func (c *SessionController) GetDates(ctx echo.Context) error {
	dates, appErr := c.SessionService.SessionDates(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, map[string]any{"dates": dates}, "get dates success")
}

// GetDays returns the localized weekday name lists.
// GET /api/v1/private/sessions/days
func (c *SessionController) GetDays(ctx echo.Context) error {
	names, appErr := c.SessionService.SessionWeekdayNames(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, names, "get days success")
}
