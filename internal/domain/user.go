package domain

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// IsElevated сообщает, имеет ли роль доступ к командным эндпоинтам
func (r Role) IsElevated() bool {
	return r == RoleManager || r == RoleAdmin
}

type User struct {
	ID         string
	Username   string
	Department string
	Role       Role
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
