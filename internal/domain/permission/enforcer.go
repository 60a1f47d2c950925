package permission

// PermissionEnforcer is the domain-facing contract for the centralized
// permission matrix. Role-to-permission mappings live in policy storage,
// never scattered across handlers.
type PermissionEnforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	AddRoleForUser(subject string, role string) error
	DeleteRoleForUser(subject string, role string) error
	GetRolesForUser(subject string) ([]string, error)
	GetPermissionsForUser(subject string) ([][]string, error)
	LoadPolicy() error
}
