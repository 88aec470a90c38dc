package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// Estados de cuenta.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User es un operador del sistema (administrador o cajero).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca texto plano después de persistir
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
