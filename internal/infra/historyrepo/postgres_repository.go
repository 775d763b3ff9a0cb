package historyrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/internal/domain/units"
)

// PostgresRepository implements conversion.HistoryRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Record inserts a conversion_history row.
func (r *PostgresRepository) Record(ctx context.Context, entry conversion.HistoryEntry) error {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO conversion_history (id, category, from_unit, to_unit, input, output, formatted, locale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, string(entry.Category), entry.From, entry.To, entry.Input, entry.Output, entry.Formatted, entry.Locale, entry.CreatedAt)
	return err
}

// Recent returns the newest rows first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]conversion.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, category, from_unit, to_unit, input, output, formatted, locale, created_at
		FROM conversion_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []conversion.HistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func scanHistoryEntry(row pgx.Row) (conversion.HistoryEntry, error) {
	var (
		entry    conversion.HistoryEntry
		id       uuid.UUID
		category string
	)
	if err := row.Scan(&id, &category, &entry.From, &entry.To, &entry.Input, &entry.Output, &entry.Formatted, &entry.Locale, &entry.CreatedAt); err != nil {
		return conversion.HistoryEntry{}, err
	}
	entry.ID = id.String()
	entry.Category = units.Category(category)
	entry.CreatedAt = entry.CreatedAt.UTC()
	return entry, nil
}

var _ conversion.HistoryRepository = (*PostgresRepository)(nil)
