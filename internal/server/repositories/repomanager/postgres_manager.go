package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/keykeeper/internal/dbx"
	"github.com/dmitrijs2005/keykeeper/internal/server/migrations"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/auditlog"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/keys"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

var _ RepositoryManager = (*PostgresRepositoryManager)(nil)

// PostgresRepositoryManager vends PostgreSQL-backed repositories over a
// shared *sql.DB and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager wraps an already opened database.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// sqlOpen is a seam for testing Open.
var sqlOpen = sql.Open

// Open connects to PostgreSQL through the pgx stdlib driver and checks the
// connection.
func Open(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return NewPostgresRepositoryManager(db), nil
}

func (m *PostgresRepositoryManager) Keys() keys.Repository {
	return keys.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) AuditLog() auditlog.Repository {
	return auditlog.NewPostgresRepository(m.db)
}

// WithinTx runs fn inside dbx.WithTx with repositories bound to the
// transaction.
func (m *PostgresRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, pgTx{db: tx})
	})
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type pgTx struct {
	db dbx.DBTX
}

func (t pgTx) Keys() keys.Repository {
	return keys.NewPostgresRepository(t.db)
}

func (t pgTx) AuditLog() auditlog.Repository {
	return auditlog.NewPostgresRepository(t.db)
}
