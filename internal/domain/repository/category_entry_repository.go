package repository

import (
	"time"

	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
)

// EntryFilter filtros de listado de entradas de categoría.
// Search es subcadena case-insensitive sobre la descripción.
type EntryFilter struct {
	Category  string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryEntryRepository define el puerto de persistencia para CategoryEntry (DIP).
type CategoryEntryRepository interface {
	Create(entry *entity.CategoryEntry) error
	GetByID(id string) (*entity.CategoryEntry, error)
	// FindMealInWindow busca la entrada meals del cliente con ese tipo de
	// comida cuya fecha efectiva cae en [from, to). Devuelve nil si no hay.
	FindMealInWindow(clientID, mealType string, from, to time.Time) (*entity.CategoryEntry, error)
	ListByClient(clientID string, filter EntryFilter) ([]*entity.CategoryEntry, error)
	Update(entry *entity.CategoryEntry) error
	Delete(id string) error
}
