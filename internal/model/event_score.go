package model

// EventScore maps to event_scores: a per-hostel scoring record distinct from
// Participation.Score, gated by its own ApprovalGate instance.
type EventScore struct {
	EventScoreID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_score_id"`
	EventID      string  `gorm:"type:uuid;not null"                             json:"event_id"`
	HostelID     string  `gorm:"type:uuid;not null"                             json:"hostel_id"`
	UserID       *string `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	TeamID       *string `gorm:"type:uuid"                                      json:"team_id,omitempty"`
	Score        int     `gorm:"not null;default:0"                             json:"score"`
	Remarks      string  `gorm:"type:varchar(500)"                              json:"remarks,omitempty"`
	ApprovalGate
	BaseModel

	Event  *Event  `gorm:"foreignKey:EventID;references:EventID"   json:"event,omitempty"`
	Hostel *Hostel `gorm:"foreignKey:HostelID;references:HostelID" json:"hostel,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;references:UserID"     json:"user,omitempty"`
	Team   *Team   `gorm:"foreignKey:TeamID;references:TeamID"     json:"team,omitempty"`
}

// TableName sets the table name.
func (EventScore) TableName() string { return "event_scores" }
