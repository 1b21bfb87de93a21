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

// Postgres-backed PointStore (pgx stdlib driver). Insertion order is the BIGSERIAL seq.
type SQLPointStore struct {
	DB *sql.DB
}

func NewSQLPointStore(db *sql.DB) *SQLPointStore {
	return &SQLPointStore{DB: db}
}

func (s *SQLPointStore) Append(ctx context.Context, p domain.Point) (err error) {
	defer obs.Time(ctx, "points.sql.Append")(&err)

	if s.DB == nil {
		return errors.New("sql point store: db is nil")
	}

	q := `
	INSERT INTO points (id, lat, lon, label, popup, tooltip, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := s.DB.ExecContext(ctx, q,
		p.ID.String(), p.Location.Lat, p.Location.Lon, p.Label, p.Popup, p.Tooltip, p.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("append point id=%s: %w", p.ID, err)
	}

	return nil
}

func (s *SQLPointStore) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "points.sql.Clear")(&err)

	if s.DB == nil {
		return errors.New("sql point store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM points;`); err != nil {
		return fmt.Errorf("clear points: %w", err)
	}
	return nil
}

func (s *SQLPointStore) All(ctx context.Context) (_ []domain.Point, err error) {
	defer obs.Time(ctx, "points.sql.All")(&err)

	if s.DB == nil {
		return nil, errors.New("sql point store: db is nil")
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
			id      string
			p       domain.Point
			created time.Time
		)
		if err := rows.Scan(&id, &p.Location.Lat, &p.Location.Lon, &p.Label, &p.Popup, &p.Tooltip, &created); err != nil {
			return nil, fmt.Errorf("list points: scan row: %w", err)
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("list points: parse id %q: %w", id, err)
		}
		p.CreatedAt = created.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points: row iteration: %w", err)
	}

	return out, nil
}
