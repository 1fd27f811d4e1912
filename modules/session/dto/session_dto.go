package dto

// CreateSessionRequest carries the generation parameters collected by the
// front end. Day and month are combined with the current calendar year.
type CreateSessionRequest struct {
	ProjectName string `json:"project_name"`
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	StartTime   string `json:"start_time"` // "HH:MM"
	Duration    int    `json:"duration"`   // session length, minutes
	Break       int    `json:"break"`      // pause between sessions, minutes
}

type CreateSessionResponse struct {
	ProjectName string `json:"project_name"`
	SessionDate string `json:"session_date"`
	Days        int    `json:"days"`
	SlotsPerDay int    `json:"slots_per_day"`
}

type InitializeResponse struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// WeekdayNamesResponse holds the parallel English/Serbian weekday lists,
// recomputed from the persisted dates.
type WeekdayNamesResponse struct {
	Eng []string `json:"eng"`
	Sr  []string `json:"sr"`
}

// DateFreeSlots lists the free times of one day, date formatted DD-MM,
// times HH:MM ascending. A fully booked day keeps an empty list.
type DateFreeSlots struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// SessionAnchor is the day and month the session was generated from, parsed
// back out of the persisted session_date.
type SessionAnchor struct {
	Day   int `json:"day"`
	Month int `json:"month"`
}

// SessionOverviewResponse is the combined read view of the session.
type SessionOverviewResponse struct {
	Title     string               `json:"title"`
	Anchor    SessionAnchor        `json:"anchor"`
	Dates     []string             `json:"dates"`
	Days      WeekdayNamesResponse `json:"days"`
	Schedules []DateFreeSlots      `json:"schedules"`
}
