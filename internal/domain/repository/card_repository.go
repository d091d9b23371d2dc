package repository

import "github.com/tu-usuario/diario-cuidado/internal/domain/entity"

// CardRepository define el puerto de persistencia para Card (DIP).
// Delete debe eliminar en cascada las entradas de campo de la ficha.
type CardRepository interface {
	Create(card *entity.Card) error
	GetByID(id string) (*entity.Card, error)
	Update(card *entity.Card) error
	ReplaceAssignments(cardID string, clientIDs []string) error
	ListForClient(clientID string) ([]*entity.Card, error)
	Delete(id string) error
}
