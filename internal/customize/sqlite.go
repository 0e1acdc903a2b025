package customize

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playperu/courtboard/internal/court"
)

// DocStore keeps one JSONB document per marker in the
// marker_customizations table created by the migrations package.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(db *sql.DB) *DocStore {
	return &DocStore{db: db}
}

func (s *DocStore) Get(ctx context.Context, id court.MarkerID) (Customization, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM marker_customizations WHERE id = ?`, string(id),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Customization{}, ErrNotFound
	}
	if err != nil {
		return Customization{}, err
	}
	var c Customization
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return Customization{}, fmt.Errorf("decoding %s: %w", id, err)
	}
	return c, nil
}

func (s *DocStore) Put(ctx context.Context, id court.MarkerID, c Customization) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO marker_customizations (id, data) VALUES (?, jsonb(?))
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		string(id), string(data),
	)
	return err
}

func (s *DocStore) All(ctx context.Context) (map[court.MarkerID]Customization, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, json(data) FROM marker_customizations ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[court.MarkerID]Customization)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		var c Customization
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", id, err)
		}
		out[court.MarkerID(id)] = c
	}
	return out, rows.Err()
}

// Ping reports whether the backing database is reachable.
func (s *DocStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
