package controller

import (
	"interview-planner/core/controller"
	"interview-planner/core/errors"
	"interview-planner/modules/booking/dto"
	"interview-planner/modules/booking/service"

	"github.com/labstack/echo/v4"
)

type BookingController struct {
	controller.BaseController
	BookingService service.BookingService
}

func NewBookingController(bookingService service.BookingService) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: bookingService,
	}
}

// GetFreeSlots lists the free times per date.
// GET /api/v1/private/bookings/free-slots
func (c *BookingController) GetFreeSlots(ctx echo.Context) error {
	slots, appErr := c.BookingService.FreeSlots(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, slots, "get free slots success")
}

// BookSlot records a candidate booking.
// POST /api/v1/private/bookings
func (c *BookingController) BookSlot(ctx echo.Context) error {
	requestData := new(dto.BookSlotRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := c.BookingService.BookSlot(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "slot booked")
}
