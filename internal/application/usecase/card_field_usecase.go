package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/docday"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// CardFieldUseCase libro de valores de campo de ficha.
//
// Máquina de estados por (card, client, field, día):
//
//	Ausente -> Desbloqueado   creación por admin
//	Ausente -> Bloqueado      creación por staff
//	Desbloqueado -> Bloqueado reenvío por staff
//	Bloqueado -> Bloqueado    reenvío por admin (staff es rechazado)
//	Bloqueado -> Desbloqueado solo vía SetLock de un admin
//
// El bloqueo es un flag de datos, no exclusión mutua: dos admins
// escribiendo la misma clave compiten en el almacenamiento y gana el último.
type CardFieldUseCase struct {
	fields  repository.CardFieldEntryRepository
	cards   repository.CardRepository
	clients repository.ClientRepository
	users   repository.UserRepository
}

// NewCardFieldUseCase construye el caso de uso.
func NewCardFieldUseCase(fields repository.CardFieldEntryRepository, cards repository.CardRepository, clients repository.ClientRepository, users repository.UserRepository) *CardFieldUseCase {
	return &CardFieldUseCase{fields: fields, cards: cards, clients: clients, users: users}
}

// Upsert crea o edita el valor de un campo para el día de documentación
// elegido. Un create contra una clave ya existente se comporta como edición;
// si la fila está bloqueada y el actor no es admin, se rechaza con ErrLocked.
func (uc *CardFieldUseCase) Upsert(actor dto.Actor, in dto.UpsertFieldEntryRequest) (*dto.FieldEntryResponse, error) {
	if in.FieldIndex < 0 || in.FieldIndex >= entity.CardFieldCount {
		return nil, fmt.Errorf("%w: field_index fuera de rango 0..%d", domain.ErrInvalidInput, entity.CardFieldCount-1)
	}

	card, err := uc.cards.GetByID(in.CardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !client.IsActive {
		return nil, domain.ErrClientInactive
	}
	// La ficha debe listar al cliente antes de escribir fila alguna.
	if !card.IsAssignedTo(in.ClientID) {
		return nil, fmt.Errorf("%w: la ficha no está asignada al cliente", domain.ErrInvalidInput)
	}
	if err := checkClientAccess(uc.users, actor, in.ClientID); err != nil {
		return nil, err
	}
	if !card.IsFieldEnabled(in.FieldIndex) {
		return nil, fmt.Errorf("%w: el campo %d está deshabilitado en la plantilla", domain.ErrInvalidInput, in.FieldIndex)
	}

	// Validación del valor: obligatorio salvo en el campo fecha/hora, donde
	// basta con que venga alguno de value/event_date/event_time.
	var eventDate *time.Time
	eventTime := ""
	if in.FieldIndex == entity.DateFieldIndex {
		if in.Value == "" && in.EventDate == "" && in.EventTime == "" {
			return nil, fmt.Errorf("%w: el campo %d requiere value, event_date o event_time", domain.ErrInvalidInput, entity.DateFieldIndex)
		}
		if in.EventDate != "" {
			parsed, err := docday.ParseDate(in.EventDate)
			if err != nil {
				return nil, fmt.Errorf("%w: event_date inválida %q", domain.ErrInvalidInput, in.EventDate)
			}
			day := docday.Day(parsed)
			eventDate = &day
		}
		if in.EventTime != "" {
			if !docday.ValidEventTime(in.EventTime) {
				return nil, fmt.Errorf("%w: event_time debe ser HH:MM", domain.ErrInvalidInput)
			}
			eventTime = in.EventTime
		}
	} else {
		if in.Value == "" {
			return nil, fmt.Errorf("%w: value es requerido", domain.ErrInvalidInput)
		}
		if in.EventDate != "" || in.EventTime != "" {
			return nil, fmt.Errorf("%w: event_date/event_time solo aplican al campo %d", domain.ErrInvalidInput, entity.DateFieldIndex)
		}
	}

	// Día de documentación: siempre el del caller cuando lo da; la hora del
	// servidor solo entra en creación pura sin fecha.
	now := time.Now()
	docDate := docday.Day(now)
	if in.Date != "" {
		parsed, err := docday.ParseDate(in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, in.Date)
		}
		docDate = docday.Day(parsed)
	}

	lockAfterWrite := actor.Role != entity.RoleAdmin

	existing, err := uc.fields.GetByKey(in.CardID, in.ClientID, in.FieldIndex, docDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsLocked && actor.Role != entity.RoleAdmin {
			return nil, domain.ErrLocked
		}
		existing.Value = in.Value
		if in.FieldIndex == entity.DateFieldIndex {
			existing.EventDate = eventDate
			existing.EventTime = eventTime
		}
		// El reenvío de staff bloquea; el de admin conserva el flag tal
		// cual (desbloquear es solo vía SetLock).
		if lockAfterWrite {
			existing.IsLocked = true
		}
		existing.UpdatedAt = now
		if err := uc.fields.Update(existing); err != nil {
			return nil, err
		}
		return toFieldEntryResponse(existing), nil
	}

	entry := &entity.CardFieldEntry{
		ID:         uuid.New().String(),
		CardID:     in.CardID,
		ClientID:   in.ClientID,
		FieldIndex: in.FieldIndex,
		Value:      in.Value,
		EventDate:  eventDate,
		EventTime:  eventTime,
		DocDate:    docDate,
		IsLocked:   lockAfterWrite,
		CreatedBy:  actor.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	// Un insert concurrente sobre la misma clave aflora como ErrConflict
	// desde la restricción de unicidad; no hay locking en proceso.
	if err := uc.fields.Create(entry); err != nil {
		return nil, err
	}
	return toFieldEntryResponse(entry), nil
}

// SetLock fija el flag de bloqueo sin tocar el valor (solo admin).
func (uc *CardFieldUseCase) SetLock(actor dto.Actor, id string, locked bool) (*dto.FieldEntryResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	entry, err := uc.fields.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.fields.SetLock(id, locked); err != nil {
		return nil, err
	}
	entry.IsLocked = locked
	return toFieldEntryResponse(entry), nil
}

// ListForCardClient lista las entradas de la ficha para el cliente,
// opcionalmente de un solo día de documentación.
func (uc *CardFieldUseCase) ListForCardClient(actor dto.Actor, cardID, clientID, date string) ([]*dto.FieldEntryResponse, error) {
	card, err := uc.cards.GetByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
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
	var docDate *time.Time
	if date != "" {
		parsed, err := docday.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, date)
		}
		day := docday.Day(parsed)
		docDate = &day
	}
	list, err := uc.fields.ListForCardClient(cardID, clientID, docDate)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FieldEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toFieldEntryResponse(e))
	}
	return out, nil
}

func toFieldEntryResponse(e *entity.CardFieldEntry) *dto.FieldEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.FieldEntryResponse{
		ID:         e.ID,
		CardID:     e.CardID,
		ClientID:   e.ClientID,
		FieldIndex: e.FieldIndex,
		Value:      e.Value,
		EventDate:  e.EventDate,
		EventTime:  e.EventTime,
		DocDate:    e.DocDate,
		IsLocked:   e.IsLocked,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
