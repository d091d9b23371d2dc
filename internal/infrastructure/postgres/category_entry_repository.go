package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/diario-cuidado/internal/domain/entity"
	"github.com/tu-usuario/diario-cuidado/internal/domain/repository"
)

var _ repository.CategoryEntryRepository = (*CategoryEntryRepo)(nil)

// CategoryEntryRepo implementación de CategoryEntryRepository (usable con pool o tx).
type CategoryEntryRepo struct {
	q Querier
}

// NewCategoryEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryEntryRepository(q Querier) *CategoryEntryRepo {
	return &CategoryEntryRepo{q: q}
}

const entryColumns = `id, client_id, category, description, meal_type, entry_date, created_by, created_at, updated_at`

// Create persiste una nueva entrada.
func (r *CategoryEntryRepo) Create(entry *entity.CategoryEntry) error {
	query := `
		INSERT INTO category_entries (id, client_id, category, description, meal_type, entry_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ClientID, entry.Category, entry.Description, nullIfEmpty(entry.MealType),
		entry.EntryDate, entry.CreatedBy, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *CategoryEntryRepo) GetByID(id string) (*entity.CategoryEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM category_entries WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindMealInWindow busca la entrada meals del cliente con ese tipo de comida
// cuya fecha efectiva cae en [from, to). A lo sumo hay una para los tipos
// principales; con varias (snacks) se toma la más reciente.
func (r *CategoryEntryRepo) FindMealInWindow(clientID, mealType string, from, to time.Time) (*entity.CategoryEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM category_entries
		WHERE client_id = $1 AND category = $2 AND meal_type = $3
		  AND entry_date >= $4 AND entry_date < $5
		ORDER BY entry_date DESC
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query,
		clientID, entity.CategoryMeals, mealType, from, to))
}

// ListByClient lista entradas del cliente aplicando los filtros, ordenadas
// por fecha efectiva descendente. La query se compone dinámicamente con
// squirrel; el patrón ILIKE se escapa para tratar el término como literal.
func (r *CategoryEntryRepo) ListByClient(clientID string, filter repository.EntryFilter) ([]*entity.CategoryEntry, error) {
	builder := sq.Select(strings.Split(entryColumns, ", ")...).
		From("category_entries").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("entry_date DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		builder = builder.Where("description ILIKE ?", "%"+escapeLike(filter.Search)+"%")
	}
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"entry_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"entry_date": *filter.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list category entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.CategoryEntry
	for rows.Next() {
		var e entity.CategoryEntry
		var mealType *string
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Category, &e.Description, &mealType,
			&e.EntryDate, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category entry: %w", err)
		}
		if mealType != nil {
			e.MealType = *mealType
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una entrada.
func (r *CategoryEntryRepo) Update(entry *entity.CategoryEntry) error {
	query := `
		UPDATE category_entries
		SET category = $2, description = $3, meal_type = $4, entry_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Category, entry.Description, nullIfEmpty(entry.MealType),
		entry.EntryDate, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada por ID (borrado duro).
func (r *CategoryEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM category_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category entry: %w", err)
	}
	return nil
}

func (r *CategoryEntryRepo) scanOne(row pgx.Row) (*entity.CategoryEntry, error) {
	var e entity.CategoryEntry
	var mealType *string
	err := row.Scan(&e.ID, &e.ClientID, &e.Category, &e.Description, &mealType,
		&e.EntryDate, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category entry: %w", err)
	}
	if mealType != nil {
		e.MealType = *mealType
	}
	return &e, nil
}

// nullIfEmpty mapea "" a NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// escapeLike escapa los metacaracteres de LIKE/ILIKE (%, _, \).
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
