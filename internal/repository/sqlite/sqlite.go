package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
	"github.com/boisserenc/atelier/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection and implements domain.Database.
type DB struct {
	SQLDB *sql.DB
	now   func() time.Time
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single writer keeps id assignment serialized.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SQLDB: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// SetClock overrides the clock used to stamp createdAt columns.
func (d *DB) SetClock(now func() time.Time) {
	d.now = now
}

// Migrate applies pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := migrations.Run(ctx, d.SQLDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.SQLDB.Close()
}

func (d *DB) Users() domain.UserRepository {
	return &userRepo{db: d.SQLDB}
}

func (d *DB) ContactMessages() domain.ContactMessageRepository {
	return &contactRepo{db: d.SQLDB, now: d.now}
}

func (d *DB) BlogPosts() domain.BlogPostRepository {
	return &blogPostRepo{db: d.SQLDB, now: d.now}
}

func (d *DB) StoveProjects() domain.StoveProjectRepository {
	return &stoveRepo{db: d.SQLDB}
}

func (d *DB) Testimonials() domain.TestimonialRepository {
	return &testimonialRepo{db: d.SQLDB}
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "unique constraint")
}
