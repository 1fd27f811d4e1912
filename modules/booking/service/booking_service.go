package service

import (
	"context"
	"fmt"

	"interview-planner/core/constants"
	"interview-planner/core/errors"
	"interview-planner/core/logger"
	"interview-planner/modules/booking/dto"
	sessiondto "interview-planner/modules/session/dto"
	"interview-planner/modules/session/repository"
	sessionservice "interview-planner/modules/session/service"

	"github.com/google/uuid"
)

// slotFieldNames is the fixed write order of the four candidate fields.
var slotFieldNames = []string{"name", "contact", "city", "note"}

type BookingService interface {
	FreeSlots(ctx context.Context) ([]sessiondto.DateFreeSlots, *errors.AppError)
	BookSlot(ctx context.Context, req *dto.BookSlotRequest) (*dto.BookSlotResponse, *errors.AppError)
}

type bookingService struct {
	store          repository.DocumentStoreInterface
	sessionService sessionservice.SessionService
}

func NewBookingService(store repository.DocumentStoreInterface, sessionService sessionservice.SessionService) BookingService {
	return &bookingService{
		store:          store,
		sessionService: sessionService,
	}
}

// FreeSlots lists the unbooked times per session date.
func (s *bookingService) FreeSlots(ctx context.Context) ([]sessiondto.DateFreeSlots, *errors.AppError) {
	return s.sessionService.FreeSlotsByDate(ctx)
}

// BookSlot resolves the owning day by exact ISO date match and writes the
// four candidate fields in fixed order, one store write per field. The
// writes are deliberately not transactional: a failure partway through
// leaves the remaining fields untouched and surfaces the error to the
// caller. A slot time missing from the grid is created on write.
func (s *bookingService) BookSlot(ctx context.Context, req *dto.BookSlotRequest) (*dto.BookSlotResponse, *errors.AppError) {
	if req.SlotTime == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "slot_time is required", nil)
	}
	if len(req.Fields) != len(slotFieldNames) {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("fields must carry exactly %d values (name, contact, city, note)", len(slotFieldNames)), nil)
	}

	session, appErr := s.sessionService.LoadSession(ctx)
	if appErr != nil {
		return nil, appErr
	}

	dayKey := ""
	for _, day := range session.Days {
		if day.Date == req.Date {
			dayKey = day.Key
			break
		}
	}
	if dayKey == "" {
		logger.Warn("BookingService:BookSlot:DateNotFound", "date", req.Date)
		return nil, errors.NewAppError(errors.ErrDateNotFound,
			fmt.Sprintf("no session day matches date %s", req.Date), nil)
	}

	basePath := []string{constants.SessionRootKey, "days", dayKey, "schedules", req.SlotTime}

	updated := make([]string, 0, len(slotFieldNames))
	for i, fieldName := range slotFieldNames {
		path := append(append([]string{}, basePath...), fieldName)
		confirmation, err := s.store.Write(ctx, path, req.Fields[i])
		if err != nil {
			logger.Error("BookingService:BookSlot:Write",
				"field", fieldName,
				"date", req.Date,
				"slot_time", req.SlotTime,
				"error", err,
			)
			return nil, errors.From(err)
		}
		updated = append(updated, confirmation)
	}

	reference := uuid.NewString()
	logger.Info("BookingService:BookSlot:Booked",
		"reference", reference,
		"date", req.Date,
		"slot_time", req.SlotTime,
	)
	return &dto.BookSlotResponse{
		Reference: reference,
		Date:      req.Date,
		SlotTime:  req.SlotTime,
		Updated:   updated,
	}, nil
}
