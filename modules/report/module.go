package report

import (
	"interview-planner/core/config"
	"interview-planner/core/constants"
	"interview-planner/core/middleware"
	"interview-planner/modules/report/controller"
	reportService "interview-planner/modules/report/service"
	"interview-planner/modules/report/router"
	sessionService "interview-planner/modules/session/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, sessionSvc sessionService.SessionService, queue *asynq.Client, mux *asynq.ServeMux) (reportService.ReportService, error) {
	exporter, err := reportService.NewExporter(config.Get())
	if err != nil {
		return nil, err
	}

	reportSvc := reportService.NewReportService(sessionSvc, queue, exporter)
	if mux != nil {
		mux.HandleFunc(constants.TaskReportExport, reportSvc.HandleExportTask)
	}

	ctrl := controller.NewReportController(reportSvc)
	mw := middleware.NewMiddleware(config.Get())
	router.NewReportRouter(ctrl).Setup(e, mw)

	return reportSvc, nil
}
