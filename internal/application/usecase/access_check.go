package usecase

import (
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/access"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// checkClientAccess aplica la regla de acceso por cliente para el actor.
// Admin pasa sin consultar la DB; staff carga su asignación y verifica
// membresía. Devuelve ErrForbidden ante la denegación, distinto de
// not-found, para que el caller pueda diferenciarlos. El caller debe haber
// resuelto ya la existencia del cliente.
func checkClientAccess(users repository.UserRepository, actor dto.Actor, clientID string) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	user, err := users.GetByID(actor.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !access.CanAccess(user.Role, user.AssignedClients, clientID) {
		return domain.ErrForbidden
	}
	return nil
}
