package models

// Role определяет роль пользователя в портале
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCitizen  Role = "citizen"
	RoleObserver Role = "observer"
	RoleAnalyst  Role = "analyst"
)

// Valid сообщает, является ли роль одной из известных
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCitizen, RoleObserver, RoleAnalyst:
		return true
	}
	return false
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
