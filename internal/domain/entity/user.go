package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmpleado = "empleado"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	LastName     string
	Role         string // admin, manager, empleado
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
