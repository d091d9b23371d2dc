package repository

import "github.com/tu-usuario/diario-cuidado/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByIDs(ids []string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	ListByIDs(ids []string, limit, offset int) ([]*entity.Client, error)
}
