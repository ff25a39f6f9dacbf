package authorization

type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role carries administrator privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin || r == RoleSuperadmin
}

func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleStudent
}
