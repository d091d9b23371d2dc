package repository

import "github.com/tu-usuario/diario-cuidado/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las implementaciones deben cargar AssignedClients junto con el usuario.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	UpdateRole(id, role string) error
	ReplaceAssignments(userID string, clientIDs []string) error
	List(limit, offset int) ([]*entity.User, error)
}
