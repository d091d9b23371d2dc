package usecase_test

import (
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Mantienen la misma
// semántica observable que la implementación postgres: nil cuando no hay
// fila, ErrConflict ante clave de identidad duplicada.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateRole(id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) ReplaceAssignments(userID string, clientIDs []string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AssignedClients = clientIDs
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) GetByIDs(ids []string) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.clients[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(client *entity.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *fakeClientRepo) ListByIDs(ids []string, limit, offset int) ([]*entity.Client, error) {
	list, _ := r.GetByIDs(ids)
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, limit, offset), nil
}

type fakeEntryRepo struct {
	entries map[string]*entity.CategoryEntry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*entity.CategoryEntry)}
}

func (r *fakeEntryRepo) Create(entry *entity.CategoryEntry) error {
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) GetByID(id string) (*entity.CategoryEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntryRepo) FindMealInWindow(clientID, mealType string, from, to time.Time) (*entity.CategoryEntry, error) {
	var found *entity.CategoryEntry
	for _, e := range r.entries {
		if e.ClientID != clientID || e.Category != entity.CategoryMeals || e.MealType != mealType {
			continue
		}
		if e.EntryDate.Before(from) || !e.EntryDate.Before(to) {
			continue
		}
		if found == nil || e.EntryDate.After(found.EntryDate) {
			found = e
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (r *fakeEntryRepo) ListByClient(clientID string, filter repository.EntryFilter) ([]*entity.CategoryEntry, error) {
	out := make([]*entity.CategoryEntry, 0)
	for _, e := range r.entries {
		if e.ClientID != clientID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strContainsFold(e.Description, filter.Search) {
			continue
		}
		if filter.StartDate != nil && e.EntryDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.EntryDate.After(*filter.EndDate) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

func (r *fakeEntryRepo) Update(entry *entity.CategoryEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) Delete(id string) error {
	if _, ok := r.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

type fakeCardRepo struct {
	cards map[string]*entity.Card
}

func newFakeCardRepo(cards ...*entity.Card) *fakeCardRepo {
	r := &fakeCardRepo{cards: make(map[string]*entity.Card)}
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return r
}

func (r *fakeCardRepo) Create(card *entity.Card) error {
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) GetByID(id string) (*entity.Card, error) {
	return r.cards[id], nil
}

func (r *fakeCardRepo) Update(card *entity.Card) error {
	if _, ok := r.cards[card.ID]; !ok {
		return domain.ErrNotFound
	}
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) ReplaceAssignments(cardID string, clientIDs []string) error {
	c, ok := r.cards[cardID]
	if !ok {
		return domain.ErrNotFound
	}
	c.AssignedClients = clientIDs
	return nil
}

func (r *fakeCardRepo) ListForClient(clientID string) ([]*entity.Card, error) {
	out := make([]*entity.Card, 0)
	for _, c := range r.cards {
		if c.IsAssignedTo(clientID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCardRepo) Delete(id string) error {
	if _, ok := r.cards[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.cards, id)
	return nil
}

type fieldKey struct {
	cardID     string
	clientID   string
	fieldIndex int
	docDate    string
}

type fakeFieldRepo struct {
	byID  map[string]*entity.CardFieldEntry
	byKey map[fieldKey]string
}

func newFakeFieldRepo() *fakeFieldRepo {
	return &fakeFieldRepo{
		byID:  make(map[string]*entity.CardFieldEntry),
		byKey: make(map[fieldKey]string),
	}
}

func keyOf(cardID, clientID string, fieldIndex int, docDate time.Time) fieldKey {
	return fieldKey{cardID, clientID, fieldIndex, docDate.Format("2006-01-02")}
}

func (r *fakeFieldRepo) Create(entry *entity.CardFieldEntry) error {
	k := keyOf(entry.CardID, entry.ClientID, entry.FieldIndex, entry.DocDate)
	if _, dup := r.byKey[k]; dup {
		return domain.ErrConflict
	}
	cp := *entry
	r.byID[entry.ID] = &cp
	r.byKey[k] = entry.ID
	return nil
}

func (r *fakeFieldRepo) GetByID(id string) (*entity.CardFieldEntry, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeFieldRepo) GetByKey(cardID, clientID string, fieldIndex int, docDate time.Time) (*entity.CardFieldEntry, error) {
	id, ok := r.byKey[keyOf(cardID, clientID, fieldIndex, docDate)]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeFieldRepo) Update(entry *entity.CardFieldEntry) error {
	if _, ok := r.byID[entry.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *entry
	r.byID[entry.ID] = &cp
	return nil
}

func (r *fakeFieldRepo) SetLock(id string, locked bool) error {
	e, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.IsLocked = locked
	return nil
}

func (r *fakeFieldRepo) ListForCardClient(cardID, clientID string, docDate *time.Time) ([]*entity.CardFieldEntry, error) {
	out := make([]*entity.CardFieldEntry, 0)
	for _, e := range r.byID {
		if e.CardID != cardID || e.ClientID != clientID {
			continue
		}
		if docDate != nil && e.DocDate.Format("2006-01-02") != docDate.Format("2006-01-02") {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldIndex < out[j].FieldIndex })
	return out, nil
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func strContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
