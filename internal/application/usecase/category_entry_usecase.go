package usecase

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tu-usuario/diario-cuidado/internal/application/dto"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/docday"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// CategoryEntryUseCase libro de entradas libres por categoría.
// Regla central: para meals con breakfast/lunch/dinner existe a lo sumo un
// registro por cliente y día efectivo: un create sobre el mismo día muta
// el registro existente en lugar de insertar. Snacks no se deduplica.
type CategoryEntryUseCase struct {
	entries repository.CategoryEntryRepository
	clients repository.ClientRepository
	users   repository.UserRepository
}

// NewCategoryEntryUseCase construye el caso de uso.
func NewCategoryEntryUseCase(entries repository.CategoryEntryRepository, clients repository.ClientRepository, users repository.UserRepository) *CategoryEntryUseCase {
	return &CategoryEntryUseCase{entries: entries, clients: clients, users: users}
}

// Create valida y registra una entrada. Si category = meals y el tipo de
// comida es principal, busca un registro del mismo día efectivo y lo
// sobreescribe en su lugar.
func (uc *CategoryEntryUseCase) Create(actor dto.Actor, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	if in.Description == "" || utf8.RuneCountInString(in.Description) > entity.MaxDescriptionLen {
		return nil, fmt.Errorf("%w: description debe tener entre 1 y %d caracteres", domain.ErrInvalidInput, entity.MaxDescriptionLen)
	}
	if in.Category == entity.CategoryMeals {
		if !entity.ValidMealType(in.MealType) {
			return nil, fmt.Errorf("%w: meal_type requerido para meals", domain.ErrInvalidInput)
		}
	} else if in.MealType != "" {
		return nil, fmt.Errorf("%w: meal_type solo aplica a meals", domain.ErrInvalidInput)
	}

	var callerDate *time.Time
	if in.Date != "" {
		parsed, err := docday.ParseDate(in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, in.Date)
		}
		callerDate = &parsed
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
	if !client.HasCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría %q no habilitada para el cliente", domain.ErrInvalidInput, in.Category)
	}
	if err := checkClientAccess(uc.users, actor, in.ClientID); err != nil {
		return nil, err
	}

	now := time.Now()
	effective := docday.Effective(callerDate, now)

	// Upsert por día solo para comidas principales; snacks siempre inserta.
	if in.Category == entity.CategoryMeals && entity.IsMainMeal(in.MealType) {
		from, to := docday.Window(effective)
		existing, err := uc.entries.FindMealInWindow(in.ClientID, in.MealType, from, to)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			existing.Description = in.Description
			existing.EntryDate = effective
			existing.UpdatedAt = now
			if err := uc.entries.Update(existing); err != nil {
				return nil, err
			}
			return toEntryResponse(existing), nil
		}
	}

	entry := &entity.CategoryEntry{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Category:    in.Category,
		Description: in.Description,
		MealType:    in.MealType,
		EntryDate:   effective,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.entries.Create(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// List lista entradas del cliente con filtros, ordenadas por fecha efectiva
// descendente. El límite superior del rango se extiende al fin del día.
func (uc *CategoryEntryUseCase) List(actor dto.Actor, clientID string, q dto.ListEntriesQuery) ([]*dto.EntryResponse, error) {
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
	if q.Category != "" && !entity.ValidCategory(q.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, q.Category)
	}

	filter := repository.EntryFilter{Category: q.Category, Search: q.Search}
	if q.StartDate != "" {
		start, err := docday.ParseDate(q.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date inválida", domain.ErrInvalidInput)
		}
		filter.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := docday.ParseDate(q.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date inválida", domain.ErrInvalidInput)
		}
		end = docday.EndOfDay(end)
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, fmt.Errorf("%w: start_date posterior a end_date", domain.ErrInvalidInput)
	}

	list, err := uc.entries.ListByClient(clientID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// Update modifica categoría, descripción o tipo de comida de una entrada.
// Al menos un campo debe venir. La coherencia categoría/meal_type se
// revalida sobre el estado final.
func (uc *CategoryEntryUseCase) Update(actor dto.Actor, id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	if in.Category == nil && in.Description == nil && in.MealType == nil {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput)
	}
	entry, err := uc.entries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkClientAccess(uc.users, actor, entry.ClientID); err != nil {
		return nil, err
	}

	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *in.Category)
		}
		entry.Category = *in.Category
	}
	if in.Description != nil {
		if *in.Description == "" || utf8.RuneCountInString(*in.Description) > entity.MaxDescriptionLen {
			return nil, fmt.Errorf("%w: description debe tener entre 1 y %d caracteres", domain.ErrInvalidInput, entity.MaxDescriptionLen)
		}
		entry.Description = *in.Description
	}
	if in.MealType != nil {
		entry.MealType = *in.MealType
	}
	// Estado final coherente: meals exige meal_type válido; otras lo vacían.
	if entry.Category == entity.CategoryMeals {
		if !entity.ValidMealType(entry.MealType) {
			return nil, fmt.Errorf("%w: meal_type requerido para meals", domain.ErrInvalidInput)
		}
	} else {
		entry.MealType = ""
	}

	// La regla de una-por-día rige también al editar: si el estado final es
	// una comida principal, no puede colisionar con otra entrada del mismo
	// tipo en el día efectivo (la propia fila no cuenta).
	if entry.Category == entity.CategoryMeals && entity.IsMainMeal(entry.MealType) {
		from, to := docday.Window(entry.EntryDate)
		existing, err := uc.entries.FindMealInWindow(entry.ClientID, entry.MealType, from, to)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != entry.ID {
			return nil, fmt.Errorf("%w: ya existe %s para el cliente ese día", domain.ErrConflict, entry.MealType)
		}
	}

	entry.UpdatedAt = time.Now()
	if err := uc.entries.Update(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// Delete elimina una entrada por id (borrado duro).
func (uc *CategoryEntryUseCase) Delete(actor dto.Actor, id string) error {
	entry, err := uc.entries.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	if err := checkClientAccess(uc.users, actor, entry.ClientID); err != nil {
		return err
	}
	return uc.entries.Delete(id)
}

func toEntryResponse(e *entity.CategoryEntry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	return &dto.EntryResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Category:    e.Category,
		Description: e.Description,
		MealType:    e.MealType,
		EntryDate:   e.EntryDate,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
