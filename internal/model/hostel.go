package model

// HostelGender partitions hostels for the cultural eligibility rule.
type HostelGender string

const (
	HostelBoys  HostelGender = "boys"
	HostelGirls HostelGender = "girls"
)

// Valid reports whether g is a known hostel gender.
func (g HostelGender) Valid() bool {
	return g == HostelBoys || g == HostelGirls
}

// Hostel maps to hostels.
type Hostel struct {
	HostelID string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"hostel_id"`
	Name     string       `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Gender   HostelGender `gorm:"type:varchar(10);not null"                      json:"gender"`
	Warden   string       `gorm:"type:varchar(100)"                              json:"warden,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Hostel) TableName() string { return "hostels" }
