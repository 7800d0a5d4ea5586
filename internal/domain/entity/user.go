package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del estudio (cliente o administrador).
// Role guarda el rol persistido; el rol efectivo se deriva en sesión con la
// regla del email administrativo fijo (ver auth.ResolveRole).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName  string
	Role         string // user, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
