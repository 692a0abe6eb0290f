package user

type Role string

const (
	RoleMember  Role = "member"
	RoleTenant  Role = "tenant"
	RoleCashier Role = "cashier"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleTenant, RoleCashier, RoleAdmin:
		return true
	default:
		return false
	}
}

var roleLevels = map[Role]int{
	RoleMember:  1,
	RoleTenant:  2,
	RoleCashier: 3,
	RoleAdmin:   4,
}

// HasPermission reports whether r is at least as privileged as required.
func (r Role) HasPermission(required Role) bool {
	return roleLevels[r] >= roleLevels[required]
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
