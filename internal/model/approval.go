package model

import "errors"

// Authority identifies one of the two independent approving bodies.
type Authority string

const (
	AuthorityTUSC Authority = "tusc"
	AuthorityDSW  Authority = "dsw"
)

var (
	ErrUnknownAuthority = errors.New("unknown approval authority")
	ErrGateIncomplete   = errors.New("both authority approvals are required")
)

// ApprovalGate is the two-authority approval state embedded by Event and
// EventScore. FinalApproved is a persisted column set by an explicit finalize
// action; every transition that clears an authority flag also clears it, so
// FinalApproved implies both authority flags across any call sequence.
type ApprovalGate struct {
	TUSCApproved  bool `gorm:"not null;default:false" json:"tusc_approved"`
	DSWApproved   bool `gorm:"not null;default:false" json:"dsw_approved"`
	FinalApproved bool `gorm:"not null;default:false" json:"final_approved"`
}

// Approve sets the flag of the given authority. Approving twice is a no-op.
func (g *ApprovalGate) Approve(a Authority) error {
	switch a {
	case AuthorityTUSC:
		g.TUSCApproved = true
	case AuthorityDSW:
		g.DSWApproved = true
	default:
		return ErrUnknownAuthority
	}
	return nil
}

// Retract clears the flag of the given authority. The other authority's flag
// is untouched; FinalApproved always drops with it.
func (g *ApprovalGate) Retract(a Authority) error {
	switch a {
	case AuthorityTUSC:
		g.TUSCApproved = false
	case AuthorityDSW:
		g.DSWApproved = false
	default:
		return ErrUnknownAuthority
	}
	g.FinalApproved = false
	return nil
}

// BothApproved reports whether both authorities have signed off.
func (g ApprovalGate) BothApproved() bool {
	return g.TUSCApproved && g.DSWApproved
}

// Finalize marks the record publicly visible. Fails unless both authorities
// have approved.
func (g *ApprovalGate) Finalize() error {
	if !g.BothApproved() {
		return ErrGateIncomplete
	}
	g.FinalApproved = true
	return nil
}

// Unfinalize withdraws public visibility without touching the authority flags.
func (g *ApprovalGate) Unfinalize() {
	g.FinalApproved = false
}
