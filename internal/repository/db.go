package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// NewDB creates a database connection pool for the given driver and DSN.
// Supported drivers are "mysql" (production) and "sqlite" (local runs and
// tests). The MySQL DSN must carry parseTime=true and clientFoundRows=true;
// the latter makes conditional updates report matched rows rather than
// changed rows.
func NewDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed, continuing without store", "error", err)
	}

	return db, nil
}
