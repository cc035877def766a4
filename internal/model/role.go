package model

// Role is the closed set of user roles.
type Role string

const (
	RoleStudent     Role = "student"
	RoleHostelAdmin Role = "hostel_admin"
	RoleDSW         Role = "dsw"
	RoleTUSC        Role = "tusc"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleHostelAdmin, RoleDSW, RoleTUSC, RoleAdmin:
		return true
	}
	return false
}

// Authority maps an approving role to its gate authority.
// Only tusc and dsw hold approval authority.
func (r Role) Authority() (Authority, bool) {
	switch r {
	case RoleTUSC:
		return AuthorityTUSC, true
	case RoleDSW:
		return AuthorityDSW, true
	}
	return "", false
}

// Action names a permission-gated operation.
type Action string

const (
	ActionEventCreate      Action = "event.create"
	ActionEventUpdate      Action = "event.update"
	ActionEventDelete      Action = "event.delete"
	ActionEventApprove     Action = "event.approve"
	ActionEventFinalize    Action = "event.finalize"
	ActionScoreRecord      Action = "score.record"
	ActionScoreApprove     Action = "score.approve"
	ActionScoreFinalize    Action = "score.finalize"
	ActionRegister         Action = "participation.register"
	ActionResultUpdate     Action = "participation.result"
	ActionTeamCreate       Action = "team.create"
	ActionTeamMemberAdd    Action = "team.member.add"
	ActionTeamMemberRemove Action = "team.member.remove"
	ActionHostelManage     Action = "hostel.manage"
	ActionResultsExport    Action = "results.export"
)

// permissions is the (action, role) table. Absent entries mean denied.
var permissions = map[Action]map[Role]bool{
	ActionEventCreate:      {RoleHostelAdmin: true, RoleAdmin: true},
	ActionEventUpdate:      {RoleHostelAdmin: true, RoleAdmin: true},
	ActionEventDelete:      {RoleAdmin: true},
	ActionEventApprove:     {RoleTUSC: true, RoleDSW: true},
	ActionEventFinalize:    {RoleAdmin: true},
	ActionScoreRecord:      {RoleTUSC: true, RoleDSW: true, RoleAdmin: true},
	ActionScoreApprove:     {RoleTUSC: true, RoleDSW: true},
	ActionScoreFinalize:    {RoleAdmin: true},
	ActionRegister:         {RoleStudent: true, RoleHostelAdmin: true, RoleAdmin: true},
	ActionResultUpdate:     {RoleHostelAdmin: true, RoleAdmin: true},
	ActionTeamCreate:       {RoleStudent: true, RoleHostelAdmin: true, RoleAdmin: true},
	ActionTeamMemberAdd:    {RoleStudent: true, RoleHostelAdmin: true, RoleAdmin: true},
	ActionTeamMemberRemove: {RoleStudent: true, RoleHostelAdmin: true, RoleAdmin: true},
	ActionHostelManage:     {RoleAdmin: true},
	ActionResultsExport:    {RoleTUSC: true, RoleDSW: true, RoleAdmin: true},
}

// Allowed reports whether role may perform action.
func Allowed(action Action, role Role) bool {
	return permissions[action][role]
}
