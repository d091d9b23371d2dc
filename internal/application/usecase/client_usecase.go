package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes bajo cuidado.
type ClientUseCase struct {
	clients repository.ClientRepository
	users   repository.UserRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, users repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, users: users}
}

// Create crea un cliente (solo admin, la ruta lo garantiza).
// Las categorías se normalizan: desconocidas fuera, vacío = las cinco.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || len(in.Name) > 200 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:                uuid.New().String(),
		Name:              in.Name,
		PhotoURL:          in.PhotoURL,
		EnabledCategories: entity.NormalizeCategories(in.EnabledCategories),
		Notes:             in.Notes,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente. Se resuelve la existencia antes del acceso:
// un cliente inexistente es not-found aunque el actor no lo tenga asignado.
func (uc *ClientUseCase) GetByID(actor dto.Actor, id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkClientAccess(uc.users, actor, id); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update actualiza parcialmente un cliente (solo admin).
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" || len(*in.Name) > 200 {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.PhotoURL != nil {
		client.PhotoURL = *in.PhotoURL
	}
	if in.EnabledCategories != nil {
		client.EnabledCategories = entity.NormalizeCategories(in.EnabledCategories)
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	if in.IsActive != nil {
		client.IsActive = *in.IsActive
	}
	client.UpdatedAt = time.Now()
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes: admin ve todos; staff solo los asignados.
func (uc *ClientUseCase) List(actor dto.Actor, limit, offset int) (*dto.ClientListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var list []*entity.Client
	var err error
	if actor.Role == entity.RoleAdmin {
		list, err = uc.clients.List(limit, offset)
	} else {
		var user *entity.User
		user, err = uc.users.GetByID(actor.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		if len(user.AssignedClients) == 0 {
			list = nil
		} else {
			list, err = uc.clients.ListByIDs(user.AssignedClients, limit, offset)
		}
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:                c.ID,
		Name:              c.Name,
		PhotoURL:          c.PhotoURL,
		EnabledCategories: c.EnabledCategories,
		Notes:             c.Notes,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
