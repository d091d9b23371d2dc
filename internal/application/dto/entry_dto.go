package dto

import "time"

// CreateEntryRequest entrada para crear una entrada de categoría.
// Date es opcional: RFC3339 o YYYY-MM-DD; vacío = momento del envío.
// MealType es obligatorio cuando category = meals.
type CreateEntryRequest struct {
	ClientID    string `json:"client_id" validate:"required,uuid"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,max=5000"`
	Date        string `json:"date" validate:"omitempty"`
	MealType    string `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snacks"`
}

// UpdateEntryRequest entrada parcial: al menos un campo debe venir.
type UpdateEntryRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	MealType    *string `json:"meal_type"`
}

// ListEntriesQuery filtros de listado (query params).
type ListEntriesQuery struct {
	Category  string `query:"category"`
	Search    string `query:"search"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// EntryResponse salida de una entrada de categoría.
type EntryResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	MealType    string    `json:"meal_type,omitempty"`
	EntryDate   time.Time `json:"entry_date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
