package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo implementación de CardRepository (usable con pool o tx).
type CardRepo struct {
	q Querier
}

// NewCardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCardRepository(q Querier) *CardRepo {
	return &CardRepo{q: q}
}

// Create persiste una nueva ficha.
func (r *CardRepo) Create(card *entity.Card) error {
	query := `
		INSERT INTO cards (id, title, field_titles, enabled_fields, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		card.ID, card.Title, card.FieldTitles, card.EnabledFields,
		card.CreatedBy, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// GetByID obtiene una ficha por ID con su asignación de clientes.
func (r *CardRepo) GetByID(id string) (*entity.Card, error) {
	query := `
		SELECT id, title, field_titles, enabled_fields, created_by, created_at, updated_at
		FROM cards WHERE id = $1`
	var c entity.Card
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Title, &c.FieldTitles, &c.EnabledFields, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	if err := r.loadAssignments(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update actualiza una ficha.
func (r *CardRepo) Update(card *entity.Card) error {
	query := `
		UPDATE cards SET title = $2, field_titles = $3, enabled_fields = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		card.ID, card.Title, card.FieldTitles, card.EnabledFields, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	return nil
}

// ReplaceAssignments reemplaza el conjunto de clientes de la ficha en una
// transacción corta (no aditivo).
func (r *CardRepo) ReplaceAssignments(cardID string, clientIDs []string) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace card assignments: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM card_clients WHERE card_id = $1`, cardID); err != nil {
		return fmt.Errorf("clear card assignments: %w", err)
	}
	for _, clientID := range clientIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO card_clients (card_id, client_id) VALUES ($1, $2)`, cardID, clientID); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert card assignment: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace card assignments: %w", err)
	}
	return nil
}

// ListForClient lista las fichas asignadas al cliente.
func (r *CardRepo) ListForClient(clientID string) ([]*entity.Card, error) {
	query := `
		SELECT c.id, c.title, c.field_titles, c.enabled_fields, c.created_by, c.created_at, c.updated_at
		FROM cards c
		JOIN card_clients cc ON cc.card_id = c.id
		WHERE cc.client_id = $1
		ORDER BY c.title`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list cards for client: %w", err)
	}
	defer rows.Close()
	var list []*entity.Card
	for rows.Next() {
		var c entity.Card
		if err := rows.Scan(&c.ID, &c.Title, &c.FieldTitles, &c.EnabledFields, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		if err := r.loadAssignments(c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina la ficha; card_clients y card_field_entries caen por
// ON DELETE CASCADE.
func (r *CardRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

func (r *CardRepo) loadAssignments(c *entity.Card) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT client_id FROM card_clients WHERE card_id = $1 ORDER BY client_id`, c.ID)
	if err != nil {
		return fmt.Errorf("load card assignments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var clientID string
		if err := rows.Scan(&clientID); err != nil {
			return fmt.Errorf("scan card assignment: %w", err)
		}
		c.AssignedClients = append(c.AssignedClients, clientID)
	}
	return rows.Err()
}
