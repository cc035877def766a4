package dto

// ── results module DTOs ──

// ResultEntry is one row of a finalized result list.
type ResultEntry struct {
	ParticipantName string `json:"participant_name"`
	HostelName      string `json:"hostel,omitempty"`
	Position        string `json:"position"`
	Score           int    `json:"score"`
}

// EventResultsResponse is the ordered result set of one finalized event.
type EventResultsResponse struct {
	EventID   string        `json:"event_id"`
	EventName string        `json:"event_name"`
	Date      string        `json:"date"`
	Mode      string        `json:"mode"`
	Category  string        `json:"category"`
	Entries   []ResultEntry `json:"entries"`
}
