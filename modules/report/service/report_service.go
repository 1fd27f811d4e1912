package service

import (
	"context"
	"encoding/json"
	"strings"

	"interview-planner/core/constants"
	"interview-planner/core/errors"
	"interview-planner/core/logger"
	"interview-planner/modules/report/dto"
	sessionservice "interview-planner/modules/session/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type ReportService interface {
	BuildReport(ctx context.Context, lang string) (*dto.ReportResponse, *errors.AppError)
	ExportReport(ctx context.Context, lang string) (*dto.ExportResponse, *errors.AppError)
	HandleExportTask(ctx context.Context, task *asynq.Task) error
}

type reportService struct {
	sessionService sessionservice.SessionService
	queue          *asynq.Client
	exporter       Exporter
}

func NewReportService(sessionService sessionservice.SessionService, queue *asynq.Client, exporter Exporter) ReportService {
	return &reportService{
		sessionService: sessionService,
		queue:          queue,
		exporter:       exporter,
	}
}

// BuildReport projects the persisted session into the flattened report. Pure
// read: a slot appears iff at least one of its four candidate fields is set;
// every day contributes an entry even when nothing is booked.
func (s *reportService) BuildReport(ctx context.Context, lang string) (*dto.ReportResponse, *errors.AppError) {
	session, appErr := s.sessionService.LoadSession(ctx)
	if appErr != nil {
		return nil, appErr
	}

	var weekday any
	switch lang {
	case constants.ReportLangEnglish:
		weekday = session.DayNameEng
	case constants.ReportLangSerbian:
		weekday = session.DayNameSr
	default:
		weekday = []string{session.DayNameEng, session.DayNameSr}
	}

	report := &dto.ReportResponse{
		Planner: dto.PlannerInfo{
			Title:     session.Title,
			StartDate: session.SessionDate,
			Weekday:   weekday,
		},
		Days: make([]dto.DayReport, 0, len(session.Days)),
	}

	for _, day := range session.Days {
		dayReport := dto.DayReport{
			Date:  day.Date,
			Slots: make([]dto.SlotReport, 0),
		}
		for _, slot := range day.Slots {
			fields := make([]any, 0, 4)
			for _, value := range slot.Fields() {
				if value != nil {
					fields = append(fields, value)
				}
			}
			if len(fields) == 0 {
				continue
			}
			dayReport.Slots = append(dayReport.Slots, dto.SlotReport{
				Time:   slot.Time,
				Fields: fields,
			})
		}
		report.Days = append(report.Days, dayReport)
	}

	return report, nil
}

// exportPayload is the wire form of a queued export task.
type exportPayload struct {
	JobID string `json:"job_id"`
	Lang  string `json:"lang"`
}

// ExportReport enqueues a background export of the report.
func (s *reportService) ExportReport(ctx context.Context, lang string) (*dto.ExportResponse, *errors.AppError) {
	if s.queue == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "export queue is not configured", nil)
	}

	jobID := uuid.NewString()
	payload, err := json.Marshal(exportPayload{JobID: jobID, Lang: lang})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "cannot encode export payload", err)
	}

	task := asynq.NewTask(constants.TaskReportExport, payload)
	if _, err := s.queue.EnqueueContext(ctx, task); err != nil {
		logger.Error("ReportService:ExportReport:Enqueue", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "cannot enqueue export task", err)
	}

	logger.Info("ReportService:ExportReport:Enqueued", "job_id", jobID, "lang", lang)
	return &dto.ExportResponse{JobID: jobID, Lang: lang}, nil
}

// HandleExportTask is the asynq handler for report exports: rebuild the
// report from the latest persisted state and hand it to the exporter.
func (s *reportService) HandleExportTask(ctx context.Context, task *asynq.Task) error {
	var payload exportPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	report, appErr := s.BuildReport(ctx, payload.Lang)
	if appErr != nil {
		logger.Error("ReportService:HandleExportTask:Build", "job_id", payload.JobID, "error", appErr)
		return appErr
	}

	raw, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return err
	}

	name := ExportName(report.Planner.Title, strings.ToLower(payload.Lang))
	location, err := s.exporter.Export(ctx, name, raw)
	if err != nil {
		logger.Error("ReportService:HandleExportTask:Export", "job_id", payload.JobID, "error", err)
		return err
	}

	logger.Info("ReportService:HandleExportTask:Done",
		"job_id", payload.JobID,
		"location", location,
	)
	return nil
}
