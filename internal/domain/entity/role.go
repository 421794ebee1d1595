package entity

// Role enumerates the closed set of account roles. Role is fixed at
// identity creation; there is no migration path between roles.
type Role string

const (
	RoleFamily    Role = "FAMILY"
	RoleDoctor    Role = "DOCTOR"
	RoleCaregiver Role = "CAREGIVER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFamily, RoleDoctor, RoleCaregiver, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
