package user

type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleEducator:
		return true
	}
	return false
}
