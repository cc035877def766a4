package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) CreateWithStudent(ctx context.Context, user *model.User, student *model.Student) error {
	if err := m.Create(ctx, user); err != nil {
		return err
	}
	student.UserID = user.UserID
	if student.StudentID == "" {
		student.StudentID = "student-" + student.RollNo
	}
	user.Student = student
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

// ── Mock HostelRepository ──

type mockHostelRepo struct {
	hostels   map[string]*model.Hostel
	residents map[string]int64
}

func newMockHostelRepo() *mockHostelRepo {
	return &mockHostelRepo{
		hostels:   make(map[string]*model.Hostel),
		residents: make(map[string]int64),
	}
}

func (m *mockHostelRepo) Create(_ context.Context, hostel *model.Hostel) error {
	if hostel.HostelID == "" {
		hostel.HostelID = "hostel-" + hostel.Name
	}
	m.hostels[hostel.HostelID] = hostel
	return nil
}

func (m *mockHostelRepo) GetByID(_ context.Context, id string) (*model.Hostel, error) {
	if h, ok := m.hostels[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHostelRepo) GetByName(_ context.Context, name string) (*model.Hostel, error) {
	for _, h := range m.hostels {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHostelRepo) List(_ context.Context) ([]model.Hostel, error) {
	var result []model.Hostel
	for _, h := range m.hostels {
		result = append(result, *h)
	}
	return result, nil
}

func (m *mockHostelRepo) Update(_ context.Context, hostel *model.Hostel) error {
	m.hostels[hostel.HostelID] = hostel
	return nil
}

func (m *mockHostelRepo) Delete(_ context.Context, id string) error {
	delete(m.hostels, id)
	return nil
}

func (m *mockHostelRepo) CountResidents(_ context.Context, hostelID string) (int64, error) {
	return m.residents[hostelID], nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events     map[string]*model.Event
	references map[string]int64
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{
		events:     make(map[string]*model.Event),
		references: make(map[string]int64),
	}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if event.EventID == "" {
		event.EventID = "event-" + event.Name
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, filters *repository.EventListFilters, offset, limit int) ([]model.Event, int64, error) {
	var result []model.Event
	for _, e := range m.events {
		if filters != nil {
			if filters.Category != "" && string(e.Category) != filters.Category {
				continue
			}
			if filters.Mode != "" && string(e.Mode) != filters.Mode {
				continue
			}
			if filters.FinalizedOnly && !e.FinalApproved {
				continue
			}
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

func (m *mockEventRepo) ListUpcoming(_ context.Context, from time.Time) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if !e.Date.Before(from) {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEventRepo) ListFinalized(_ context.Context) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if e.FinalApproved {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string) error {
	delete(m.events, id)
	return nil
}

func (m *mockEventRepo) CountReferences(_ context.Context, id string) (int64, error) {
	return m.references[id], nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams   map[string]*model.Team
	members map[string][]model.TeamMembership
	// students backs the Student preload of ListMembers
	students *mockStudentRepo
}

func newMockTeamRepo(students *mockStudentRepo) *mockTeamRepo {
	return &mockTeamRepo{
		teams:    make(map[string]*model.Team),
		members:  make(map[string][]model.TeamMembership),
		students: students,
	}
}

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team) error {
	if team.TeamID == "" {
		team.TeamID = "team-" + team.Name
	}
	for _, t := range m.teams {
		if t.Name == team.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) GetByName(_ context.Context, name string) (*model.Team, error) {
	for _, t := range m.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) List(_ context.Context) ([]model.Team, error) {
	var result []model.Team
	for _, t := range m.teams {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTeamRepo) AddMember(_ context.Context, membership *model.TeamMembership) error {
	for _, existing := range m.members[membership.TeamID] {
		if existing.StudentID == membership.StudentID && existing.Category == membership.Category {
			return gorm.ErrDuplicatedKey
		}
	}
	if membership.MembershipID == "" {
		membership.MembershipID = fmt.Sprintf("membership-%s-%s", membership.TeamID, membership.StudentID)
	}
	m.members[membership.TeamID] = append(m.members[membership.TeamID], *membership)
	return nil
}

func (m *mockTeamRepo) RemoveMember(_ context.Context, teamID, studentID string) error {
	kept := m.members[teamID][:0]
	for _, existing := range m.members[teamID] {
		if existing.StudentID != studentID {
			kept = append(kept, existing)
		}
	}
	m.members[teamID] = kept
	return nil
}

func (m *mockTeamRepo) ListMembers(_ context.Context, teamID string) ([]model.TeamMembership, error) {
	members := make([]model.TeamMembership, len(m.members[teamID]))
	copy(members, m.members[teamID])
	if m.students != nil {
		for i := range members {
			if s, ok := m.students.students[members[i].StudentID]; ok {
				members[i].Student = s
			}
		}
	}
	return members, nil
}

// ── Mock ParticipationRepository ──

type mockParticipationRepo struct {
	participations map[string]*model.Participation
	order          []string
	nextID         int
	// events lets GetByID preload the governing event like the real repo
	events *mockEventRepo
}

func newMockParticipationRepo(events *mockEventRepo) *mockParticipationRepo {
	return &mockParticipationRepo{
		participations: make(map[string]*model.Participation),
		events:         events,
	}
}

// put stores a participation preserving insertion order; tests use it to
// seed rows directly.
func (m *mockParticipationRepo) put(p *model.Participation) {
	if _, exists := m.participations[p.ParticipationID]; !exists {
		m.order = append(m.order, p.ParticipationID)
	}
	m.participations[p.ParticipationID] = p
}

func (m *mockParticipationRepo) Create(_ context.Context, p *model.Participation) error {
	// mirror the partial unique indexes
	for _, existing := range m.participations {
		if existing.EventID != p.EventID {
			continue
		}
		if p.UserID != nil && existing.UserID != nil && *existing.UserID == *p.UserID {
			return gorm.ErrDuplicatedKey
		}
		if p.TeamID != nil && existing.TeamID != nil && *existing.TeamID == *p.TeamID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	p.ParticipationID = fmt.Sprintf("participation-%d", m.nextID)
	m.put(p)
	return nil
}

func (m *mockParticipationRepo) GetByID(_ context.Context, id string) (*model.Participation, error) {
	p, ok := m.participations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if m.events != nil {
		if e, ok := m.events.events[p.EventID]; ok {
			p.Event = e
		}
	}
	return p, nil
}

func (m *mockParticipationRepo) ExistsByEventUser(_ context.Context, eventID, userID string) (bool, error) {
	for _, p := range m.participations {
		if p.EventID == eventID && p.UserID != nil && *p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockParticipationRepo) ExistsByEventTeam(_ context.Context, eventID, teamID string) (bool, error) {
	for _, p := range m.participations {
		if p.EventID == eventID && p.TeamID != nil && *p.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockParticipationRepo) ListByEvent(_ context.Context, eventID string) ([]model.Participation, error) {
	var result []model.Participation
	for _, id := range m.order {
		p, ok := m.participations[id]
		if !ok || p.EventID != eventID {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockParticipationRepo) Update(_ context.Context, p *model.Participation) error {
	m.participations[p.ParticipationID] = p
	return nil
}

func (m *mockParticipationRepo) Delete(_ context.Context, id string) error {
	delete(m.participations, id)
	return nil
}

// ── Mock EventScoreRepository ──

type mockEventScoreRepo struct {
	scores map[string]*model.EventScore
	nextID int
}

func newMockEventScoreRepo() *mockEventScoreRepo {
	return &mockEventScoreRepo{scores: make(map[string]*model.EventScore)}
}

func (m *mockEventScoreRepo) Create(_ context.Context, score *model.EventScore) error {
	m.nextID++
	score.EventScoreID = fmt.Sprintf("score-%d", m.nextID)
	m.scores[score.EventScoreID] = score
	return nil
}

func (m *mockEventScoreRepo) GetByID(_ context.Context, id string) (*model.EventScore, error) {
	if s, ok := m.scores[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventScoreRepo) List(_ context.Context, filters *repository.EventScoreFilters) ([]model.EventScore, error) {
	var result []model.EventScore
	for _, s := range m.scores {
		if filters != nil {
			if filters.EventID != "" && s.EventID != filters.EventID {
				continue
			}
			if filters.HostelID != "" && s.HostelID != filters.HostelID {
				continue
			}
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockEventScoreRepo) Update(_ context.Context, score *model.EventScore) error {
	m.scores[score.EventScoreID] = score
	return nil
}

// ── aggregate helper ──

type mockRepos struct {
	users          *mockUserRepo
	students       *mockStudentRepo
	hostels        *mockHostelRepo
	events         *mockEventRepo
	teams          *mockTeamRepo
	participations *mockParticipationRepo
	scores         *mockEventScoreRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		users:    newMockUserRepo(),
		students: newMockStudentRepo(),
		hostels:  newMockHostelRepo(),
		events:   newMockEventRepo(),
		scores:   newMockEventScoreRepo(),
	}
	mocks.teams = newMockTeamRepo(mocks.students)
	mocks.participations = newMockParticipationRepo(mocks.events)

	repo := &repository.Repository{
		User:          mocks.users,
		Student:       mocks.students,
		Hostel:        mocks.hostels,
		Event:         mocks.events,
		Team:          mocks.teams,
		Participation: mocks.participations,
		EventScore:    mocks.scores,
	}
	return repo, mocks
}
