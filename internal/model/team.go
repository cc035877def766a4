package model

// Team maps to teams. A team owns its membership rows; students are
// referenced, never owned.
type Team struct {
	TeamID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	BaseModel

	Members []TeamMembership `gorm:"foreignKey:TeamID;references:TeamID" json:"members,omitempty"`
}

// TableName sets the table name.
func (Team) TableName() string { return "teams" }

// TeamMembership maps to team_memberships. Category is duplicated per
// membership because a student may join different teams under different
// event categories.
type TeamMembership struct {
	MembershipID string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"membership_id"`
	TeamID       string        `gorm:"type:uuid;not null;uniqueIndex:uq_team_memberships"    json:"team_id"`
	StudentID    string        `gorm:"type:uuid;not null;uniqueIndex:uq_team_memberships"    json:"student_id"`
	Category     EventCategory `gorm:"type:varchar(10);not null;uniqueIndex:uq_team_memberships" json:"category"`
	BaseModel

	Team    *Team    `gorm:"foreignKey:TeamID;references:TeamID"          json:"team,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID"    json:"student,omitempty"`
}

// TableName sets the table name.
func (TeamMembership) TableName() string { return "team_memberships" }
