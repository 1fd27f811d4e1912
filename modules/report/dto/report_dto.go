package dto

// PlannerInfo mirrors the planner header of the report: project title, the
// session's anchor date and its weekday name in the requested language. For
// an unrecognized language the weekday stays the unresolved [english,
// serbian] pair instead of defaulting.
type PlannerInfo struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	Weekday   any    `json:"weekday"`
}

// SlotReport is one booked slot: its time key and the candidate field values
// that are set, in name/contact/city/note order.
type SlotReport struct {
	Time   string `json:"time"`
	Fields []any  `json:"fields"`
}

// DayReport lists the booked slots of one date. Days without bookings keep
// an empty slot list.
type DayReport struct {
	Date  string       `json:"date"`
	Slots []SlotReport `json:"slots"`
}

type ReportResponse struct {
	Planner PlannerInfo `json:"planner"`
	Days    []DayReport `json:"days"`
}

type ExportRequest struct {
	Lang string `json:"lang"`
}

type ExportResponse struct {
	JobID string `json:"job_id"`
	Lang  string `json:"lang"`
}
