package store

import (
	"database/sql"
	"eov-wgs-service/internal/platform/db"
	"eov-wgs-service/internal/ports"
	"fmt"
)

// Opened is a ready point store plus the connection backing it, if any.
type Opened struct {
	Store ports.PointStore
	DB    *sql.DB
}

func (o *Opened) Close() error {
	if o.DB == nil {
		return nil
	}
	return o.DB.Close()
}

// Open returns the point store for driver ("memory", "postgres" or "sqlite").
// SQL stores get their schema created before use.
func Open(driver, databaseURL, dbPath string) (*Opened, error) {
	switch driver {
	case "", "memory":
		return &Opened{Store: NewMemoryPointStore()}, nil
	case string(Postgres):
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		if err := InitSchema(conn, Postgres); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Opened{Store: NewSQLPointStore(conn), DB: conn}, nil
	case string(Sqlite):
		conn, err := db.OpenSqlite(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		if err := InitSchema(conn, Sqlite); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Opened{Store: NewSqlitePointStore(conn), DB: conn}, nil
	default:
		return nil, fmt.Errorf("open store: unknown driver %q", driver)
	}
}
