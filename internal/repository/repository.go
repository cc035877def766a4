package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User          UserRepository
	Student       StudentRepository
	Hostel        HostelRepository
	Event         EventRepository
	Team          TeamRepository
	Participation ParticipationRepository
	EventScore    EventScoreRepository
}

// NewRepository builds the aggregate over one GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Student:       NewStudentRepo(db),
		Hostel:        NewHostelRepo(db),
		Event:         NewEventRepo(db),
		Team:          NewTeamRepo(db),
		Participation: NewParticipationRepo(db),
		EventScore:    NewEventScoreRepo(db),
	}
}
