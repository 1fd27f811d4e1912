package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"interview-planner/core/config"
	"interview-planner/core/constants"
	"interview-planner/core/errors"
	"interview-planner/core/logger"
	"interview-planner/modules/session/dto"
	"interview-planner/modules/session/entity"
	"interview-planner/modules/session/repository"
)

type SessionService interface {
	// Setup
	InitializeDocument(ctx context.Context) (*dto.InitializeResponse, *errors.AppError)
	SessionExists(ctx context.Context) (bool, *errors.AppError)
	BuildSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, *errors.AppError)

	// Read views
	ProjectTitle(ctx context.Context) (string, *errors.AppError)
	SessionDates(ctx context.Context) ([]string, *errors.AppError)
	SessionWeekdayNames(ctx context.Context) (*dto.WeekdayNamesResponse, *errors.AppError)
	SessionAnchor(ctx context.Context) (day int, month int, appErr *errors.AppError)
	FreeSlotsByDate(ctx context.Context) ([]dto.DateFreeSlots, *errors.AppError)
	Overview(ctx context.Context) (*dto.SessionOverviewResponse, *errors.AppError)

	// LoadSession exposes the typed session tree to sibling modules.
	LoadSession(ctx context.Context) (*entity.Session, *errors.AppError)
}

type sessionService struct {
	store repository.DocumentStoreInterface
}

func NewSessionService(store repository.DocumentStoreInterface) SessionService {
	return &sessionService{store: store}
}

// InitializeDocument makes sure the session root key exists, starting a
// fresh document when the backing store has nothing loadable. Safe to call
// repeatedly; an existing session is left untouched.
func (s *sessionService) InitializeDocument(ctx context.Context) (*dto.InitializeResponse, *errors.AppError) {
	created, err := s.store.Initialize(ctx)
	if err != nil {
		logger.Error("SessionService:InitializeDocument", "error", err)
		return nil, errors.From(err)
	}

	message := "basic structure already exists"
	if created {
		message = "basic structure created"
	}
	logger.Info("SessionService:InitializeDocument", "created", created)
	return &dto.InitializeResponse{Created: created, Message: message}, nil
}

// SessionExists reports whether a session has been generated: the root key
// must be present and non-empty. An unloadable store counts as "no data yet".
func (s *sessionService) SessionExists(ctx context.Context) (bool, *errors.AppError) {
	value, err := s.store.ReadKey(ctx, constants.SessionRootKey)
	if err != nil {
		if errors.Is(err, errors.ErrDocumentUnavailable) {
			return false, nil
		}
		return false, errors.From(err)
	}
	node, ok := value.(map[string]any)
	return ok && len(node) > 0, nil
}

// BuildSession synthesizes the full session tree and persists it, replacing
// any previous session under the same root key (last write wins).
func (s *sessionService) BuildSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, *errors.AppError) {
	title := strings.TrimSpace(req.ProjectName)
	if title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "project_name is required", nil)
	}

	englishName, appErr := WeekdayName(req.Day, req.Month)
	if appErr != nil {
		return nil, appErr
	}
	serbianName := LocalizeWeekday(englishName)

	grid, appErr := SlotGrid(req.StartTime, scheduleEndTime(), req.Duration, req.Break)
	if appErr != nil {
		return nil, appErr
	}

	dates, appErr := NextWorkingDates(req.Day, req.Month)
	if appErr != nil {
		return nil, appErr
	}

	days := make(map[string]any, len(dates))
	for _, pair := range dates {
		// Each day receives its own copy of the grid template so bookings
		// on one day never leak into another.
		days[pair.Key] = map[string]any{
			"date":      pair.Date,
			"schedules": CopySlotGrid(grid),
		}
	}

	sessionDate := fmt.Sprintf("%02d-%02d-%d", req.Day, req.Month, time.Now().Year())
	session := map[string]any{
		"project_name": title,
		"session_date": sessionDate,
		"day_name":     []any{englishName, serbianName},
		"days":         days,
	}

	if err := s.store.ReplaceSession(ctx, session); err != nil {
		logger.Error("SessionService:BuildSession:Persist", "project", title, "error", err)
		return nil, errors.From(err)
	}

	logger.Info("SessionService:BuildSession:Created",
		"project", title,
		"session_date", sessionDate,
		"days", len(days),
		"slots_per_day", len(grid),
	)
	return &dto.CreateSessionResponse{
		ProjectName: title,
		SessionDate: sessionDate,
		Days:        len(days),
		SlotsPerDay: len(grid),
	}, nil
}

func (s *sessionService) ProjectTitle(ctx context.Context) (string, *errors.AppError) {
	session, appErr := s.LoadSession(ctx)
	if appErr != nil {
		return "", appErr
	}
	return session.Title, nil
}

func (s *sessionService) SessionDates(ctx context.Context) ([]string, *errors.AppError) {
	session, appErr := s.loadSessionWithDays(ctx)
	if appErr != nil {
		return nil, appErr
	}

	dates := make([]string, 0, len(session.Days))
	for _, day := range session.Days {
		dates = append(dates, day.Date)
	}
	return dates, nil
}

// SessionWeekdayNames recomputes the weekday of every stored date instead of
// reusing the day_name pair captured at creation, so the lists always match
// the persisted dates.
func (s *sessionService) SessionWeekdayNames(ctx context.Context) (*dto.WeekdayNamesResponse, *errors.AppError) {
	session, appErr := s.loadSessionWithDays(ctx)
	if appErr != nil {
		return nil, appErr
	}

	names := &dto.WeekdayNamesResponse{
		Eng: make([]string, 0, len(session.Days)),
		Sr:  make([]string, 0, len(session.Days)),
	}
	for _, day := range session.Days {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidDate,
				fmt.Sprintf("stored date %q is not ISO formatted", day.Date), err)
		}
		english := date.Weekday().String()
		names.Eng = append(names.Eng, english)
		names.Sr = append(names.Sr, LocalizeWeekday(english))
	}
	return names, nil
}

// SessionAnchor returns the day and month the session was anchored on,
// parsed back from the persisted session_date.
func (s *sessionService) SessionAnchor(ctx context.Context) (int, int, *errors.AppError) {
	session, appErr := s.LoadSession(ctx)
	if appErr != nil {
		return 0, 0, appErr
	}

	anchor, err := time.Parse("02-01-2006", session.SessionDate)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrInvalidDate,
			fmt.Sprintf("stored session_date %q is not DD-MM-YYYY", session.SessionDate), err)
	}
	return anchor.Day(), int(anchor.Month()), nil
}

// FreeSlotsByDate lists, per day in day order, the HH:MM times of every slot
// whose name field is still null. Fully booked days contribute an empty list
// rather than being omitted.
func (s *sessionService) FreeSlotsByDate(ctx context.Context) ([]dto.DateFreeSlots, *errors.AppError) {
	session, appErr := s.loadSessionWithDays(ctx)
	if appErr != nil {
		return nil, appErr
	}

	result := make([]dto.DateFreeSlots, 0, len(session.Days))
	for _, day := range session.Days {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidDate,
				fmt.Sprintf("stored date %q is not ISO formatted", day.Date), err)
		}

		times := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			if !slot.Free() {
				continue
			}
			slotTime, err := time.Parse("15:04:05", slot.Time)
			if err != nil {
				continue
			}
			times = append(times, slotTime.Format("15:04"))
		}

		result = append(result, dto.DateFreeSlots{
			Date:  date.Format("02-01"),
			Times: times,
		})
	}
	return result, nil
}

// Overview bundles title, dates, weekday names and free slots in one view.
func (s *sessionService) Overview(ctx context.Context) (*dto.SessionOverviewResponse, *errors.AppError) {
	title, appErr := s.ProjectTitle(ctx)
	if appErr != nil {
		return nil, appErr
	}
	anchorDay, anchorMonth, appErr := s.SessionAnchor(ctx)
	if appErr != nil {
		return nil, appErr
	}
	dates, appErr := s.SessionDates(ctx)
	if appErr != nil {
		return nil, appErr
	}
	names, appErr := s.SessionWeekdayNames(ctx)
	if appErr != nil {
		return nil, appErr
	}
	schedules, appErr := s.FreeSlotsByDate(ctx)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.SessionOverviewResponse{
		Title:     title,
		Anchor:    dto.SessionAnchor{Day: anchorDay, Month: anchorMonth},
		Dates:     dates,
		Days:      *names,
		Schedules: schedules,
	}, nil
}

// LoadSession reads and decodes the session subtree. An absent or still-empty
// root key is a SessionNotFound, store failures propagate as-is.
func (s *sessionService) LoadSession(ctx context.Context) (*entity.Session, *errors.AppError) {
	value, err := s.store.ReadKey(ctx, constants.SessionRootKey)
	if err != nil {
		return nil, errors.From(err)
	}
	if node, ok := value.(map[string]any); value == nil || (ok && len(node) == 0) {
		return nil, errors.NewAppError(errors.ErrSessionNotFound, "no interview session has been created", nil)
	}

	session, parseErr := entity.SessionFromDocument(value)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrSessionNotFound, parseErr.Error(), parseErr)
	}
	return session, nil
}

func (s *sessionService) loadSessionWithDays(ctx context.Context) (*entity.Session, *errors.AppError) {
	session, appErr := s.LoadSession(ctx)
	if appErr != nil {
		return nil, appErr
	}
	if len(session.Days) == 0 {
		return nil, errors.NewAppError(errors.ErrSessionNotFound, "session has no generated days", nil)
	}
	return session, nil
}

func scheduleEndTime() string {
	if cfg, ok := config.GetSafe(); ok && cfg.Schedule.EndTime != "" {
		return cfg.Schedule.EndTime
	}
	return constants.DefaultScheduleEndTime
}
