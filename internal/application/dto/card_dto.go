package dto

import "time"

// CreateCardRequest entrada para crear una ficha.
// FieldTitles se normaliza a 11 posiciones; EnabledFields vacío = los 11.
type CreateCardRequest struct {
	Title         string   `json:"title" validate:"required,max=100"`
	FieldTitles   []string `json:"field_titles"`
	EnabledFields []int    `json:"enabled_fields"`
}

// UpdateCardRequest entrada parcial para actualizar una ficha.
// FieldTitles/EnabledFields nil = sin cambio.
type UpdateCardRequest struct {
	Title         *string  `json:"title"`
	FieldTitles   []string `json:"field_titles"`
	EnabledFields []int    `json:"enabled_fields"`
}

// AssignCardRequest reemplaza el conjunto de clientes de la ficha (no aditivo).
type AssignCardRequest struct {
	ClientIDs []string `json:"client_ids"`
}

// CardResponse salida de una ficha.
type CardResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	FieldTitles     []string  `json:"field_titles"`
	EnabledFields   []int     `json:"enabled_fields"`
	AssignedClients []string  `json:"assigned_clients"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpsertFieldEntryRequest crea o edita el valor de un campo de ficha.
// Date selecciona el día de documentación (vacío = hoy del servidor).
// Value es obligatorio para los campos 0..9; para el campo 10 basta con
// uno de value/event_date/event_time.
type UpsertFieldEntryRequest struct {
	CardID     string `json:"card_id" validate:"required,uuid"`
	ClientID   string `json:"client_id" validate:"required,uuid"`
	FieldIndex int    `json:"field_index" validate:"min=0,max=10"`
	Value      string `json:"value"`
	Date       string `json:"date" validate:"omitempty"`
	EventDate  string `json:"event_date" validate:"omitempty"`
	EventTime  string `json:"event_time" validate:"omitempty"`
}

// SetLockRequest fija el flag de bloqueo de una entrada de campo (solo admin).
type SetLockRequest struct {
	IsLocked *bool `json:"is_locked" validate:"required"`
}

// FieldEntryResponse salida de una entrada de campo de ficha.
type FieldEntryResponse struct {
	ID         string     `json:"id"`
	CardID     string     `json:"card_id"`
	ClientID   string     `json:"client_id"`
	FieldIndex int        `json:"field_index"`
	Value      string     `json:"value"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	EventTime  string     `json:"event_time,omitempty"`
	DocDate    time.Time  `json:"doc_date"`
	IsLocked   bool       `json:"is_locked"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
