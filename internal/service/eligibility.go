package service

import (
	"errors"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
)

// ── eligibility errors ──
//
// The reason strings are user-facing: handlers return them verbatim so a
// rejected member addition explains which composition rule failed.

var (
	ErrAlreadyTeamMember      = errors.New("student is already a member of this team for this category")
	ErrHostelRequired         = errors.New("student has no hostel affiliation and cannot join a team")
	ErrSportsHostelMismatch   = errors.New("sports teams must draw all members from a single hostel")
	ErrCulturalHostelConflict = errors.New("cultural teams may draw from at most one boys hostel and one girls hostel")
)

// HostelRef identifies a candidate's hostel for the composition check.
type HostelRef struct {
	ID     string
	Gender model.HostelGender
}

// MemberHostel is the view of one existing membership the check needs.
type MemberHostel struct {
	StudentID    string
	Category     model.EventCategory
	HostelID     *string
	HostelGender model.HostelGender
}

// CheckTeamAddition decides whether adding candidateStudent to a team keeps
// its composition legal under the given event category. Pure check: the
// caller performs the insert only on a nil return.
//
// Rules:
//   - sports: every sports-category member shares exactly one hostel; an
//     empty sports roster accepts any hostel and sets the precedent.
//   - cultural: the distinct hostels among cultural members, partitioned by
//     hostel gender, must not exceed one per partition.
//
// A candidate with no hostel affiliation is rejected for both categories:
// sports needs a hostel identity, and a null hostel cannot be classified
// into a gender partition.
func CheckTeamAddition(category model.EventCategory, candidateStudentID string, candidate *HostelRef, members []MemberHostel) error {
	for _, m := range members {
		if m.StudentID == candidateStudentID && m.Category == category {
			return ErrAlreadyTeamMember
		}
	}

	if candidate == nil {
		return ErrHostelRequired
	}

	switch category {
	case model.CategorySports:
		for _, m := range members {
			if m.Category != model.CategorySports || m.HostelID == nil {
				continue
			}
			if *m.HostelID != candidate.ID {
				return ErrSportsHostelMismatch
			}
		}
	case model.CategoryCultural:
		for _, m := range members {
			if m.Category != model.CategoryCultural || m.HostelID == nil {
				continue
			}
			if m.HostelGender == candidate.Gender && *m.HostelID != candidate.ID {
				return ErrCulturalHostelConflict
			}
		}
	}

	return nil
}
