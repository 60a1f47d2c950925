package authorization

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAgent UserRole = "agent"
	RoleAdmin UserRole = "admin"
)

// AllRoles lists every valid role, least privileged first.
var AllRoles = []UserRole{RoleUser, RoleAgent, RoleAdmin}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsAgent() bool {
	return r == RoleAgent
}

// IsStaff reports whether the role may triage tickets owned by other users.
func (r UserRole) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAgent || r == RoleAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
