package usecase

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// CardUseCase casos de uso de plantillas de ficha (solo admin salvo ListForClient).
type CardUseCase struct {
	cards   repository.CardRepository
	clients repository.ClientRepository
	users   repository.UserRepository
}

// NewCardUseCase construye el caso de uso.
func NewCardUseCase(cards repository.CardRepository, clients repository.ClientRepository, users repository.UserRepository) *CardUseCase {
	return &CardUseCase{cards: cards, clients: clients, users: users}
}

// Create crea una plantilla de ficha con títulos normalizados a 11 posiciones.
func (uc *CardUseCase) Create(actor dto.Actor, in dto.CreateCardRequest) (*dto.CardResponse, error) {
	if err := validateCardTitles(in.Title, in.FieldTitles); err != nil {
		return nil, err
	}
	now := time.Now()
	card := &entity.Card{
		ID:            uuid.New().String(),
		Title:         in.Title,
		FieldTitles:   entity.NormalizeFieldTitles(in.FieldTitles),
		EnabledFields: entity.NormalizeEnabledFields(in.EnabledFields),
		CreatedBy:     actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.cards.Create(card); err != nil {
		return nil, err
	}
	return toCardResponse(card), nil
}

// GetByID obtiene una ficha por ID.
func (uc *CardUseCase) GetByID(id string) (*dto.CardResponse, error) {
	card, err := uc.cards.GetByID(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	return toCardResponse(card), nil
}

// Update actualiza parcialmente una ficha; títulos y campos habilitados
// se renormalizan al guardar.
func (uc *CardUseCase) Update(id string, in dto.UpdateCardRequest) (*dto.CardResponse, error) {
	card, err := uc.cards.GetByID(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		if *in.Title == "" || utf8.RuneCountInString(*in.Title) > entity.MaxTitleLen {
			return nil, fmt.Errorf("%w: title debe tener entre 1 y %d caracteres", domain.ErrInvalidInput, entity.MaxTitleLen)
		}
		card.Title = *in.Title
	}
	if in.FieldTitles != nil {
		if err := validateCardTitles(card.Title, in.FieldTitles); err != nil {
			return nil, err
		}
		card.FieldTitles = entity.NormalizeFieldTitles(in.FieldTitles)
	}
	if in.EnabledFields != nil {
		card.EnabledFields = entity.NormalizeEnabledFields(in.EnabledFields)
	}
	card.UpdatedAt = time.Now()
	if err := uc.cards.Update(card); err != nil {
		return nil, err
	}
	return toCardResponse(card), nil
}

// Delete elimina la ficha; las entradas de campo caen en cascada en la DB.
func (uc *CardUseCase) Delete(id string) error {
	card, err := uc.cards.GetByID(id)
	if err != nil {
		return err
	}
	if card == nil {
		return domain.ErrNotFound
	}
	return uc.cards.Delete(id)
}

// Assign reemplaza el conjunto de clientes de la ficha (no aditivo).
// Cada id debe resolver a un cliente existente.
func (uc *CardUseCase) Assign(id string, clientIDs []string) (*dto.CardResponse, error) {
	card, err := uc.cards.GetByID(id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	unique := dedupe(clientIDs)
	if len(unique) > 0 {
		found, err := uc.clients.GetByIDs(unique)
		if err != nil {
			return nil, err
		}
		if len(found) != len(unique) {
			return nil, fmt.Errorf("%w: algún cliente de la lista no existe", domain.ErrNotFound)
		}
	}
	if err := uc.cards.ReplaceAssignments(id, unique); err != nil {
		return nil, err
	}
	card.AssignedClients = unique
	return toCardResponse(card), nil
}

// ListForClient lista las fichas asignadas al cliente (acceso verificado).
func (uc *CardUseCase) ListForClient(actor dto.Actor, clientID string) ([]*dto.CardResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkClientAccess(uc.users, actor, clientID); err != nil {
		return nil, err
	}
	list, err := uc.cards.ListForClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CardResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCardResponse(c))
	}
	return out, nil
}

// Los límites de longitud son en caracteres, no en bytes.
func validateCardTitles(title string, fieldTitles []string) error {
	if title == "" || utf8.RuneCountInString(title) > entity.MaxTitleLen {
		return fmt.Errorf("%w: title debe tener entre 1 y %d caracteres", domain.ErrInvalidInput, entity.MaxTitleLen)
	}
	for i, ft := range fieldTitles {
		if utf8.RuneCountInString(ft) > entity.MaxTitleLen {
			return fmt.Errorf("%w: título del campo %d excede %d caracteres", domain.ErrInvalidInput, i, entity.MaxTitleLen)
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func toCardResponse(c *entity.Card) *dto.CardResponse {
	if c == nil {
		return nil
	}
	assigned := c.AssignedClients
	if assigned == nil {
		assigned = []string{}
	}
	return &dto.CardResponse{
		ID:              c.ID,
		Title:           c.Title,
		FieldTitles:     c.FieldTitles,
		EnabledFields:   c.EnabledFields,
		AssignedClients: assigned,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
