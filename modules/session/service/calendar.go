package service

import (
	"fmt"
	"time"

	"interview-planner/core/constants"
	"interview-planner/core/errors"
)

// Weekday localization table. Unrecognized names fall back to "Unknown"
// rather than failing; callers treat that as a soft fallback.
var serbianWeekdays = map[string]string{
	"Monday":    "Ponedeljak",
	"Tuesday":   "Utorak",
	"Wednesday": "Sreda",
	"Thursday":  "Četvrtak",
	"Friday":    "Petak",
	"Saturday":  "Subota",
	"Sunday":    "Nedelja",
}

const UnknownWeekday = "Unknown"

// DatePair is one generated working date, keyed day_1..day_7.
type DatePair struct {
	Key  string
	Date string
}

// WeekdayName returns the English weekday name for day/month in the current
// calendar year.
func WeekdayName(day, month int) (string, *errors.AppError) {
	date, appErr := dateInCurrentYear(day, month)
	if appErr != nil {
		return "", appErr
	}
	return date.Weekday().String(), nil
}

// LocalizeWeekday maps a canonical English weekday name to Serbian.
func LocalizeWeekday(name string) string {
	if localized, ok := serbianWeekdays[name]; ok {
		return localized
	}
	return UnknownWeekday
}

// NextWorkingDates walks forward from the given date one calendar day at a
// time, skipping Saturday and Sunday, until exactly seven working dates have
// been collected. The first date is strictly after the input date.
func NextWorkingDates(day, month int) ([]DatePair, *errors.AppError) {
	date, appErr := dateInCurrentYear(day, month)
	if appErr != nil {
		return nil, appErr
	}

	result := make([]DatePair, 0, constants.WorkingDayCount)
	for len(result) < constants.WorkingDayCount {
		date = date.AddDate(0, 0, 1)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		result = append(result, DatePair{
			Key:  fmt.Sprintf("%s%d", constants.DayKeyPrefix, len(result)+1),
			Date: date.Format("2006-01-02"),
		})
	}
	return result, nil
}

// SlotGrid tiles the interval between startTime and endTime ("HH:MM") with
// slots spaced sessionMinutes+breakMinutes apart, keyed "HH:MM:SS". Each slot
// starts with all four candidate fields nil. An interval that fits no whole
// period yields an empty grid, not an error.
func SlotGrid(startTime, endTime string, sessionMinutes, breakMinutes int) (map[string]any, *errors.AppError) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("invalid start time %q", startTime), err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("invalid end time %q", endTime), err)
	}

	grid := map[string]any{}

	total := sessionMinutes + breakMinutes
	if total <= 0 || !end.After(start) {
		return grid, nil
	}

	periods := int(end.Sub(start).Minutes()) / total
	slotTime := start
	for i := 0; i < periods; i++ {
		grid[slotTime.Format("15:04:05")] = EmptySlot()
		slotTime = slotTime.Add(time.Duration(total) * time.Minute)
	}
	return grid, nil
}

// EmptySlot returns a fresh unbooked slot node.
func EmptySlot() map[string]any {
	return map[string]any{
		"name":    nil,
		"contact": nil,
		"city":    nil,
		"note":    nil,
	}
}

// CopySlotGrid deep-copies a slot grid so each day owns independent slots.
func CopySlotGrid(grid map[string]any) map[string]any {
	out := make(map[string]any, len(grid))
	for key, value := range grid {
		if slot, ok := value.(map[string]any); ok {
			copied := make(map[string]any, len(slot))
			for f, v := range slot {
				copied[f] = v
			}
			out[key] = copied
			continue
		}
		out[key] = value
	}
	return out
}

// dateInCurrentYear validates that day/month form a real calendar date this
// year. time.Date normalizes overflow (Feb 31 becomes Mar 2), so the result
// is checked against the inputs.
func dateInCurrentYear(day, month int) (time.Time, *errors.AppError) {
	year := time.Now().Year()
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, errors.NewAppError(errors.ErrInvalidDate,
			fmt.Sprintf("day %d and month %d do not form a valid date in %d", day, month, year), nil)
	}
	return date, nil
}
