package entity

import "time"

// CardFieldEntry es el valor de un campo de ficha para un cliente en un día
// de documentación. Identidad: (CardID, ClientID, FieldIndex, DocDate);
// la unicidad la garantiza el almacenamiento, no un lock en proceso.
//
// IsLocked es un flag de negocio, no un primitivo de exclusión: un guardado
// de staff bloquea el campo; solo un admin puede editarlo o desbloquearlo.
type CardFieldEntry struct {
	ID         string
	CardID     string
	ClientID   string
	FieldIndex int
	Value      string
	EventDate  *time.Time // solo campo 10
	EventTime  string     // solo campo 10, formato HH:MM
	DocDate    time.Time  // día de documentación (solo fecha)
	IsLocked   bool
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
