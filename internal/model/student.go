package model

// Student is the 1:1 profile of a user with role student.
// Hostel affiliation is nullable and drives eligibility checks.
type Student struct {
	StudentID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	UserID    string  `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	RollNo    string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"roll_no"`
	HostelID  *string `gorm:"type:uuid"                                      json:"hostel_id,omitempty"`
	Gender    string  `gorm:"type:varchar(10);not null"                      json:"gender"`
	BaseModel

	User   *User   `gorm:"foreignKey:UserID;references:UserID"     json:"user,omitempty"`
	Hostel *Hostel `gorm:"foreignKey:HostelID;references:HostelID" json:"hostel,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
