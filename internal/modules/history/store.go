// README: Pick history store backed by PostgreSQL.
package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the part of pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS picks (
    id             BIGSERIAL PRIMARY KEY,
    place_id       TEXT NOT NULL,
    name           TEXT NOT NULL,
    address        TEXT NOT NULL,
    transport_mode TEXT NOT NULL,
    distance_text  TEXT NOT NULL DEFAULT '',
    duration_text  TEXT NOT NULL DEFAULT '',
    picked_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS picks_picked_at_idx ON picks (picked_at DESC)`

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Migrate creates the picks table when it is missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create picks table: %w", err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, p Pick) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO picks (
            place_id, name, address, transport_mode,
            distance_text, duration_text, picked_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.PlaceID, p.Name, p.Address, p.TransportMode,
		p.DistanceText, p.DurationText, p.PickedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pick: %w", err)
	}
	return nil
}

// Recent returns at most limit picks, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Pick, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, place_id, name, address, transport_mode,
               distance_text, duration_text, picked_at
        FROM picks
        ORDER BY picked_at DESC, id DESC
        LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query picks: %w", err)
	}
	defer rows.Close()

	picks := []Pick{}
	for rows.Next() {
		var p Pick
		if err := rows.Scan(
			&p.ID, &p.PlaceID, &p.Name, &p.Address, &p.TransportMode,
			&p.DistanceText, &p.DurationText, &p.PickedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read picks: %w", err)
	}
	return picks, nil
}
