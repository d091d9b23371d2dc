package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/diario-cuidado/internal/domain"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

var _ repository.CardFieldEntryRepository = (*CardFieldEntryRepo)(nil)

// CardFieldEntryRepo implementación de CardFieldEntryRepository (usable con pool o tx).
// La unicidad de (card_id, client_id, field_index, doc_date) la garantiza la
// constraint de la tabla: un insert duplicado (incluida una carrera entre dos
// creates) aflora como domain.ErrConflict.
type CardFieldEntryRepo struct {
	q Querier
}

// NewCardFieldEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCardFieldEntryRepository(q Querier) *CardFieldEntryRepo {
	return &CardFieldEntryRepo{q: q}
}

const fieldEntryColumns = `id, card_id, client_id, field_index, value, event_date, event_time, doc_date, is_locked, created_by, created_at, updated_at`

// Create persiste una nueva entrada de campo.
func (r *CardFieldEntryRepo) Create(entry *entity.CardFieldEntry) error {
	query := `
		INSERT INTO card_field_entries (id, card_id, client_id, field_index, value, event_date, event_time, doc_date, is_locked, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CardID, entry.ClientID, entry.FieldIndex, entry.Value,
		entry.EventDate, nullIfEmpty(entry.EventTime), entry.DocDate, entry.IsLocked,
		entry.CreatedBy, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert card field entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada de campo por ID.
func (r *CardFieldEntryRepo) GetByID(id string) (*entity.CardFieldEntry, error) {
	query := `SELECT ` + fieldEntryColumns + ` FROM card_field_entries WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByKey busca la entrada con la clave de identidad exacta.
func (r *CardFieldEntryRepo) GetByKey(cardID, clientID string, fieldIndex int, docDate time.Time) (*entity.CardFieldEntry, error) {
	query := `
		SELECT ` + fieldEntryColumns + `
		FROM card_field_entries
		WHERE card_id = $1 AND client_id = $2 AND field_index = $3 AND doc_date = $4`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cardID, clientID, fieldIndex, docDate))
}

// Update sobreescribe valor, campos de evento y flag de bloqueo.
func (r *CardFieldEntryRepo) Update(entry *entity.CardFieldEntry) error {
	query := `
		UPDATE card_field_entries
		SET value = $2, event_date = $3, event_time = $4, is_locked = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Value, entry.EventDate, nullIfEmpty(entry.EventTime),
		entry.IsLocked, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update card field entry: %w", err)
	}
	return nil
}

// SetLock fija el flag de bloqueo sin tocar el valor.
func (r *CardFieldEntryRepo) SetLock(id string, locked bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE card_field_entries SET is_locked = $2, updated_at = now() WHERE id = $1`, id, locked)
	if err != nil {
		return fmt.Errorf("set card field entry lock: %w", err)
	}
	return nil
}

// ListForCardClient lista las entradas de la ficha para el cliente;
// docDate nil devuelve todos los días.
func (r *CardFieldEntryRepo) ListForCardClient(cardID, clientID string, docDate *time.Time) ([]*entity.CardFieldEntry, error) {
	query := `
		SELECT ` + fieldEntryColumns + `
		FROM card_field_entries
		WHERE card_id = $1 AND client_id = $2`
	args := []any{cardID, clientID}
	if docDate != nil {
		query += ` AND doc_date = $3`
		args = append(args, *docDate)
	}
	query += ` ORDER BY doc_date DESC, field_index`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list card field entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CardFieldEntry
	for rows.Next() {
		e, err := scanFieldEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *CardFieldEntryRepo) scanOne(row pgx.Row) (*entity.CardFieldEntry, error) {
	e, err := scanFieldEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func scanFieldEntry(row pgx.Row) (*entity.CardFieldEntry, error) {
	var e entity.CardFieldEntry
	var eventTime *string
	err := row.Scan(&e.ID, &e.CardID, &e.ClientID, &e.FieldIndex, &e.Value,
		&e.EventDate, &eventTime, &e.DocDate, &e.IsLocked, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan card field entry: %w", err)
	}
	if eventTime != nil {
		e.EventTime = *eventTime
	}
	return &e, nil
}
