package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
// El registro siempre crea staff; la promoción a admin es una operación aparte.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	AssignedClients []string  `json:"assigned_clients"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateRoleRequest cambio de rol de un usuario (solo admin).
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=staff admin"`
}

// AssignClientsRequest reemplaza el conjunto de clientes asignados a un staff.
// No es aditivo: un cliente omitido pierde el acceso.
type AssignClientsRequest struct {
	ClientIDs []string `json:"client_ids"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
