package dto

// BookSlotRequest books a candidate into one slot. Fields carries the four
// candidate values positionally: name, contact, city, note. All four are
// required even when some are empty.
type BookSlotRequest struct {
	Date     string   `json:"date"`      // YYYY-MM-DD, must match a session day
	SlotTime string   `json:"slot_time"` // HH:MM:SS
	Fields   []string `json:"fields"`
}

type BookSlotResponse struct {
	Reference string   `json:"reference"`
	Date      string   `json:"date"`
	SlotTime  string   `json:"slot_time"`
	Updated   []string `json:"updated"`
}
