package user

type Role string

const (
	RoleResident Role = "resident"
	RoleGuest    Role = "guest"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleResident, RoleGuest, RoleAdmin:
		return true
	default:
		return false
	}
}
