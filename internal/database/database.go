// Package database opens the PostgreSQL handle shared by the resume, template and profile stores.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"resumeapi/internal/config"
)

// ApplicationName is reported to the server so resume traffic is visible in pg_stat_activity.
const ApplicationName = "resumeapi"

const pingTimeout = 5 * time.Second

var (
	sqlOpen = sql.Open

	ErrIncompleteConfig = errors.New("invalid database config: host, port, user, and name are required")
)

// DSN builds a postgres:// URL from c.
func DSN(c config.DatabaseConfig) (string, error) {
	if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
		return "", ErrIncompleteConfig
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return "", fmt.Errorf("invalid database port %q", c.Port)
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{}
	q.Set("application_name", ApplicationName)
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NewPostgres opens a traced pgx-backed pool, applies the pool limits and pings once.
func NewPostgres(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := DSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL, semconv.DBName(c.Name)),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register traced driver: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	configurePool(db, c)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func configurePool(db *sql.DB, c config.DatabaseConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}
}
