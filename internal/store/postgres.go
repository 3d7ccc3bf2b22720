package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"celtis-pos/internal/core"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the snapshot as one JSONB row per terminal in the
// terminal_snapshots table (migrations/0001_snapshots.sql). Each terminal
// owns an independent engine instance, so a single upserted row per
// terminal id is sufficient. There are no concurrent writers.
type PostgresStore struct {
	pool       *pgxpool.Pool
	terminalID string
}

func NewPostgresStore(pool *pgxpool.Pool, terminalID string) *PostgresStore {
	return &PostgresStore{pool: pool, terminalID: terminalID}
}

// Load reads the terminal's snapshot. An absent row is not an error.
func (p *PostgresStore) Load(ctx context.Context) (*core.Snapshot, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		"SELECT state FROM terminal_snapshots WHERE terminal_id = $1",
		p.terminalID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &core.Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to load snapshot for terminal %s: %w", p.terminalID, err)
	}
	var snap core.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for terminal %s: %w", p.terminalID, err)
	}
	return &snap, nil
}

// Save upserts the terminal's snapshot row.
func (p *PostgresStore) Save(ctx context.Context, snap *core.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO terminal_snapshots (terminal_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (terminal_id) DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
	`, p.terminalID, data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot for terminal %s: %w", p.terminalID, err)
	}
	return nil
}
