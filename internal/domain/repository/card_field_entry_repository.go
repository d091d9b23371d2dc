package repository

import (
	"time"

	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
)

// CardFieldEntryRepository define el puerto de persistencia para CardFieldEntry (DIP).
// Create debe fallar con domain.ErrConflict ante una clave
// (card_id, client_id, field_index, doc_date) duplicada: la restricción de
// unicidad del almacenamiento es el único punto de serialización.
type CardFieldEntryRepository interface {
	Create(entry *entity.CardFieldEntry) error
	GetByID(id string) (*entity.CardFieldEntry, error)
	// GetByKey busca la entrada con la clave de identidad exacta (docDate a día).
	GetByKey(cardID, clientID string, fieldIndex int, docDate time.Time) (*entity.CardFieldEntry, error)
	Update(entry *entity.CardFieldEntry) error
	SetLock(id string, locked bool) error
	// ListForCardClient lista las entradas de la ficha para el cliente;
	// docDate nil devuelve todos los días.
	ListForCardClient(cardID, clientID string, docDate *time.Time) ([]*entity.CardFieldEntry, error)
}
