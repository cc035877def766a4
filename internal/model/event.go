package model

import "time"

// EventMode says whether an event is contested by individuals or teams.
type EventMode string

const (
	ModeSolo EventMode = "solo"
	ModeTeam EventMode = "team"
)

// Valid reports whether m is a known mode.
func (m EventMode) Valid() bool {
	return m == ModeSolo || m == ModeTeam
}

// EventCategory selects the eligibility rule applied to team composition.
type EventCategory string

const (
	CategorySports   EventCategory = "sports"
	CategoryCultural EventCategory = "cultural"
)

// Valid reports whether c is a known category.
func (c EventCategory) Valid() bool {
	return c == CategorySports || c == CategoryCultural
}

// Event maps to events.
type Event struct {
	EventID     string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Name        string        `gorm:"type:varchar(200);not null"                     json:"name"`
	Description string        `gorm:"type:text"                                      json:"description,omitempty"`
	Date        time.Time     `gorm:"not null"                                       json:"date"`
	Venue       string        `gorm:"type:varchar(200)"                              json:"venue,omitempty"`
	Mode        EventMode     `gorm:"type:varchar(10);not null"                      json:"mode"`
	Category    EventCategory `gorm:"type:varchar(10);not null"                      json:"category"`
	ApprovalGate
	BaseModel
}

// TableName sets the table name.
func (Event) TableName() string { return "events" }
