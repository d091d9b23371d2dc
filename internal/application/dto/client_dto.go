package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=200"`
	PhotoURL          string   `json:"photo_url" validate:"omitempty,url"`
	EnabledCategories []string `json:"enabled_categories"`
	Notes             string   `json:"notes"`
}

// UpdateClientRequest entrada parcial para actualizar un cliente.
type UpdateClientRequest struct {
	Name              *string  `json:"name"`
	PhotoURL          *string  `json:"photo_url"`
	EnabledCategories []string `json:"enabled_categories"`
	Notes             *string  `json:"notes"`
	IsActive          *bool    `json:"is_active"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PhotoURL          string    `json:"photo_url"`
	EnabledCategories []string  `json:"enabled_categories"`
	Notes             string    `json:"notes"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClientListResponse listado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
