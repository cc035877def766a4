package model

// Participation maps to participations. Exactly one of UserID/TeamID is set,
// enforced by a CHECK constraint; registration uniqueness per (event, subject)
// is enforced by partial unique indexes.
type Participation struct {
	ParticipationID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"participation_id"`
	EventID         string   `gorm:"type:uuid;not null"                             json:"event_id"`
	UserID          *string  `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	TeamID          *string  `gorm:"type:uuid"                                      json:"team_id,omitempty"`
	HostelID        *string  `gorm:"type:uuid"                                      json:"hostel_id,omitempty"`
	Position        Position `gorm:"type:varchar(20);not null;default:'participant'" json:"position"`
	Score           int      `gorm:"not null;default:0"                             json:"score"`
	BaseModel

	Event  *Event  `gorm:"foreignKey:EventID;references:EventID"    json:"event,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;references:UserID"      json:"user,omitempty"`
	Team   *Team   `gorm:"foreignKey:TeamID;references:TeamID"      json:"team,omitempty"`
	Hostel *Hostel `gorm:"foreignKey:HostelID;references:HostelID"  json:"hostel,omitempty"`
}

// TableName sets the table name.
func (Participation) TableName() string { return "participations" }
