package controller

import (
	"interview-planner/core/constants"
	"interview-planner/core/controller"
	"interview-planner/core/errors"
	"interview-planner/modules/report/dto"
	"interview-planner/modules/report/service"

	"github.com/labstack/echo/v4"
)

type ReportController struct {
	controller.BaseController
	ReportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{
		BaseController: controller.NewBaseController(),
		ReportService:  reportService,
	}
}

// GetReport returns the flattened report.
// GET /api/v1/private/reports?lang=ENG|SR
func (c *ReportController) GetReport(ctx echo.Context) error {
	lang := ctx.QueryParam("lang")
	if lang == "" {
		lang = constants.ReportLangEnglish
	}

	report, appErr := c.ReportService.BuildReport(ctx.Request().Context(), lang)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, report, "get report success")
}

// ExportReport enqueues a background report export.
// POST /api/v1/private/reports/export
func (c *ReportController) ExportReport(ctx echo.Context) error {
	requestData := new(dto.ExportRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Lang == "" {
		requestData.Lang = constants.ReportLangEnglish
	}

	result, appErr := c.ReportService.ExportReport(ctx.Request().Context(), requestData.Lang)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "report export enqueued")
}
