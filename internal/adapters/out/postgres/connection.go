package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionSettings are the discrete connection parameters. URL, when set,
// wins over the other fields.
type ConnectionSettings struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// BuildDSN returns a lib/pq key=value connection string.
//
// Example:
//
//	dsn, err := BuildDSN(ConnectionSettings{URL: "postgres://app:secret@db:5432/purchasing?sslmode=disable"})
//	// "dbname=purchasing host=db password=secret port=5432 sslmode=disable user=app"
func BuildDSN(s ConnectionSettings) (string, error) {
	if url := strings.Trim(strings.TrimSpace(s.URL), `"'`); url != "" {
		dsn, err := pq.ParseURL(url)
		if err != nil {
			return "", fmt.Errorf("parse database url: %w", err)
		}
		if !strings.Contains(dsn, "sslmode=") {
			dsn += " sslmode=disable"
		}
		return dsn, nil
	}

	if s.Host == "" || s.User == "" || s.Name == "" {
		return "", fmt.Errorf("database host, user and name are required")
	}
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	parts := []string{
		"host=" + quote(s.Host),
		"user=" + quote(s.User),
		"dbname=" + quote(s.Name),
		"sslmode=" + quote(sslMode),
	}
	if s.Port != "" {
		parts = append(parts, "port="+quote(s.Port))
	}
	if s.Password != "" {
		parts = append(parts, "password="+quote(s.Password))
	}
	return strings.Join(parts, " "), nil
}

func quote(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Open connects with a few retries so the service can start alongside the database.
func Open(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         NewGormLogger(log, logger.Warn),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	for attempt := 1; attempt <= 10; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		log.WarnContext(ctx, "database not ready, retrying", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	return db, nil
}

// NewGormLogger sends gorm's log lines to log.
func NewGormLogger(log *slog.Logger, level logger.LogLevel) logger.Interface {
	return logger.New(gormWriter{log: log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

type gormWriter struct {
	log *slog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Info(fmt.Sprintf(format, args...))
}
