package entity

import "time"

// Roles válidos para User.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}

// User representa un miembro del personal de cuidado.
// AssignedClients solo tiene sentido con rol staff; para admin debe estar vacío.
type User struct {
	ID              string
	Email           string
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Name            string
	Role            string // staff, admin
	AssignedClients []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
