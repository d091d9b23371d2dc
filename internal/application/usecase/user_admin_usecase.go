package usecase

import (
	"fmt"

	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/access"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// UserAdminUseCase administración de roles y asignación de clientes (solo admin).
type UserAdminUseCase struct {
	users   repository.UserRepository
	clients repository.ClientRepository
}

// NewUserAdminUseCase construye el caso de uso.
func NewUserAdminUseCase(users repository.UserRepository, clients repository.ClientRepository) *UserAdminUseCase {
	return &UserAdminUseCase{users: users, clients: clients}
}

// SetRole promueve o degrada al usuario objetivo. Un admin no puede cambiar
// su propio rol. Al subir a admin se limpia la asignación de clientes; al
// bajar a staff la lista previa se conserva tal cual (puede estar vacía).
func (uc *UserAdminUseCase) SetRole(actor dto.Actor, targetID, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, role)
	}
	if actor.UserID == targetID {
		return nil, fmt.Errorf("%w: no puedes cambiar tu propio rol", domain.ErrForbidden)
	}
	target, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	if role == entity.RoleAdmin {
		if err := uc.users.ReplaceAssignments(targetID, nil); err != nil {
			return nil, err
		}
		target.AssignedClients = nil
	}
	if err := access.CheckRoleInvariant(role, target.AssignedClients); err != nil {
		return nil, err
	}
	if err := uc.users.UpdateRole(targetID, role); err != nil {
		return nil, err
	}
	target.Role = role
	return toAdminUserResponse(target), nil
}

// SetAssignedClients reemplaza el conjunto de clientes asignados al usuario.
// No es aditivo. Un objetivo admin se rechaza de plano; cada id debe
// resolver a un cliente existente.
func (uc *UserAdminUseCase) SetAssignedClients(targetID string, clientIDs []string) (*dto.UserResponse, error) {
	target, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	// Asignar clientes a un admin se rechaza de plano, incluso lista vacía.
	if target.IsAdmin() {
		return nil, fmt.Errorf("%w: un admin no puede tener clientes asignados", domain.ErrForbidden)
	}
	unique := dedupe(clientIDs)
	if err := access.CheckRoleInvariant(target.Role, unique); err != nil {
		return nil, err
	}
	if len(unique) > 0 {
		found, err := uc.clients.GetByIDs(unique)
		if err != nil {
			return nil, err
		}
		if len(found) != len(unique) {
			return nil, fmt.Errorf("%w: algún cliente de la lista no existe", domain.ErrNotFound)
		}
	}
	if err := uc.users.ReplaceAssignments(targetID, unique); err != nil {
		return nil, err
	}
	target.AssignedClients = unique
	return toAdminUserResponse(target), nil
}

// List lista usuarios para la pantalla de administración.
func (uc *UserAdminUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.users.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toAdminUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAdminUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	assigned := u.AssignedClients
	if assigned == nil {
		assigned = []string{}
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		AssignedClients: assigned,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
