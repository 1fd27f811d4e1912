package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"interview-planner/core/constants"
	"interview-planner/core/docstore"
	"interview-planner/core/errors"
	bookingdto "interview-planner/modules/booking/dto"
	bookingservice "interview-planner/modules/booking/service"
	sessiondto "interview-planner/modules/session/dto"
	"interview-planner/modules/session/repository"
	sessionservice "interview-planner/modules/session/service"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	report  ReportService
	session sessionservice.SessionService
	booking bookingservice.BookingService
	store   repository.DocumentStoreInterface
	dates   []string
}

func newReportFixture(t *testing.T, exporter Exporter) *reportFixture {
	t.Helper()
	ctx := context.Background()

	backend := docstore.NewFileBackend(filepath.Join(t.TempDir(), "interview_data.json"))
	store := repository.NewDocumentStore(backend)
	sessionSvc := sessionservice.NewSessionService(store)

	_, appErr := sessionSvc.InitializeDocument(ctx)
	require.Nil(t, appErr)
	_, appErr = sessionSvc.BuildSession(ctx, &sessiondto.CreateSessionRequest{
		ProjectName: "Backend Hiring",
		Day:         15,
		Month:       6,
		StartTime:   "09:00",
		Duration:    30,
		Break:       10,
	})
	require.Nil(t, appErr)

	dates, appErr := sessionSvc.SessionDates(ctx)
	require.Nil(t, appErr)

	return &reportFixture{
		report:  NewReportService(sessionSvc, nil, exporter),
		session: sessionSvc,
		booking: bookingservice.NewBookingService(store, sessionSvc),
		store:   store,
		dates:   dates,
	}
}

func (f *reportFixture) book(t *testing.T, date, slotTime string, fields []string) {
	t.Helper()
	_, appErr := f.booking.BookSlot(context.Background(), &bookingdto.BookSlotRequest{
		Date:     date,
		SlotTime: slotTime,
		Fields:   fields,
	})
	require.Nil(t, appErr)
}

func TestBuildReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Language Only Changes Planner Weekday", func(t *testing.T) {
		f := newReportFixture(t, nil)
		f.book(t, f.dates[0], "09:00:00", []string{"Ana", "+381601234567", "Belgrade", "senior role"})

		eng, appErr := f.report.BuildReport(ctx, constants.ReportLangEnglish)
		require.Nil(t, appErr)
		sr, appErr := f.report.BuildReport(ctx, constants.ReportLangSerbian)
		require.Nil(t, appErr)

		assert.Equal(t, "Backend Hiring", eng.Planner.Title)
		assert.Equal(t, eng.Planner.Title, sr.Planner.Title)
		assert.Equal(t, eng.Planner.StartDate, sr.Planner.StartDate)
		assert.NotEqual(t, eng.Planner.Weekday, sr.Planner.Weekday)
		assert.Equal(t, eng.Days, sr.Days)
	})

	t.Run("Unknown Language Carries Both Weekday Names", func(t *testing.T) {
		f := newReportFixture(t, nil)

		report, appErr := f.report.BuildReport(ctx, "DE")
		require.Nil(t, appErr)

		weekday, ok := report.Planner.Weekday.([]string)
		require.True(t, ok)
		assert.Len(t, weekday, 2)
	})

	t.Run("Only Slots With At Least One Field Appear", func(t *testing.T) {
		f := newReportFixture(t, nil)
		f.book(t, f.dates[1], "10:20:00", []string{"Marko", "+381601112223", "Novi Sad", "mid role"})

		report, appErr := f.report.BuildReport(ctx, constants.ReportLangEnglish)
		require.Nil(t, appErr)
		require.Len(t, report.Days, 7)

		assert.Empty(t, report.Days[0].Slots)
		require.Len(t, report.Days[1].Slots, 1)
		slot := report.Days[1].Slots[0]
		assert.Equal(t, "10:20:00", slot.Time)
		assert.Equal(t, []any{"Marko", "+381601112223", "Novi Sad", "mid role"}, slot.Fields)
	})

	t.Run("Partially Filled Slot Keeps Set Fields", func(t *testing.T) {
		f := newReportFixture(t, nil)

		// Set only the name, leaving contact, city and note untouched.
		_, err := f.store.Write(ctx,
			[]string{constants.SessionRootKey, "days", "day_3", "schedules", "09:40:00", "name"}, "Jelena")
		require.NoError(t, err)

		report, appErr := f.report.BuildReport(ctx, constants.ReportLangEnglish)
		require.Nil(t, appErr)
		require.Len(t, report.Days[2].Slots, 1)
		slot := report.Days[2].Slots[0]
		assert.Equal(t, "09:40:00", slot.Time)
		assert.Equal(t, []any{"Jelena"}, slot.Fields)
	})

	t.Run("Empty Session Fails", func(t *testing.T) {
		backend := docstore.NewFileBackend(filepath.Join(t.TempDir(), "interview_data.json"))
		store := repository.NewDocumentStore(backend)
		sessionSvc := sessionservice.NewSessionService(store)
		_, appErr := sessionSvc.InitializeDocument(context.Background())
		require.Nil(t, appErr)

		reportSvc := NewReportService(sessionSvc, nil, nil)
		_, appErr = reportSvc.BuildReport(ctx, constants.ReportLangEnglish)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrSessionNotFound, appErr.Code)
	})
}

func TestHandleExportTask(t *testing.T) {
	dir := t.TempDir()
	f := newReportFixture(t, &FileExporter{dir: dir})
	f.book(t, f.dates[0], "09:00:00", []string{"Ana", "+381601234567", "Belgrade", "senior role"})

	payload, err := json.Marshal(exportPayload{JobID: "job-1", Lang: constants.ReportLangEnglish})
	require.NoError(t, err)

	task := asynq.NewTask(constants.TaskReportExport, payload)
	require.NoError(t, f.report.HandleExportTask(context.Background(), task))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.Contains(t, name, "backend-hiring")
	assert.Contains(t, name, "eng")
	assert.Contains(t, name, ".json")

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	var exported map[string]any
	require.NoError(t, json.Unmarshal(raw, &exported))
	planner, ok := exported["planner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Backend Hiring", planner["title"])
}

func TestExportReportWithoutQueue(t *testing.T) {
	f := newReportFixture(t, nil)

	_, appErr := f.report.ExportReport(context.Background(), constants.ReportLangEnglish)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInternalServer, appErr.Code)
}
