package store

import (
	"context"
	"database/sql"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/platform/obs"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLite-backed PointStore. Timestamps are stored as RFC 3339 text.
type SqlitePointStore struct {
	DB *sql.DB
}

func NewSqlitePointStore(db *sql.DB) *SqlitePointStore {
	return &SqlitePointStore{DB: db}
}

func (s *SqlitePointStore) Append(ctx context.Context, p domain.Point) (err error) {
	defer obs.Time(ctx, "points.sqlite.Append")(&err)

	if s.DB == nil {
		return errors.New("sqlite point store: db is nil")
	}

	q := `
	INSERT INTO points (id, lat, lon, label, popup, tooltip, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q,
		p.ID.String(), p.Location.Lat, p.Location.Lon, p.Label, p.Popup, p.Tooltip,
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("append point id=%s: %w", p.ID, err)
	}

	return nil
}

func (s *SqlitePointStore) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "points.sqlite.Clear")(&err)

	if s.DB == nil {
		return errors.New("sqlite point store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM points;`); err != nil {
		return fmt.Errorf("clear points: %w", err)
	}
	return nil
}

func (s *SqlitePointStore) All(ctx context.Context) (_ []domain.Point, err error) {
	defer obs.Time(ctx, "points.sqlite.All")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite point store: db is nil")
	}

	q := `
	SELECT id, lat, lon, label, popup, tooltip, created_at
	FROM points
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list points: query points table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Point, 0, 16)
	for rows.Next() {
		var (
			id, created string
			p           domain.Point
		)
		if err := rows.Scan(&id, &p.Location.Lat, &p.Location.Lon, &p.Label, &p.Popup, &p.Tooltip, &created); err != nil {
			return nil, fmt.Errorf("list points: scan row: %w", err)
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("list points: parse id %q: %w", id, err)
		}
		if p.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("list points: parse created_at %q: %w", created, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points: row iteration: %w", err)
	}

	return out, nil
}
