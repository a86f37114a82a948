package keys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/dbx"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/google/uuid"
)

var _ Repository = (*PostgresRepository)(nil)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// LockOwner takes a transaction-scoped advisory lock derived from ownerID.
func (r *PostgresRepository) LockOwner(ctx context.Context, ownerID string) error {
	query := `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`
	if _, err := r.db.ExecContext(ctx, query, ownerID); err != nil {
		return fmt.Errorf("lock owner: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountActive(ctx context.Context, ownerID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM api_keys
		WHERE owner_id = $1 AND status = 'ACTIVE'
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active keys: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, c *models.Credential) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO api_keys (id, owner_id, display_name, prefix, secret_hash, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, c.DisplayName, c.Prefix, c.SecretHash, string(c.Status), c.ExpiresAt, c.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert key: %w", err)
	}
	return c.ID, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Credential, error) {
	query := `
		SELECT id, owner_id, display_name, prefix, secret_hash, status, expires_at, revoked_at, last_used_at, created_at
		FROM api_keys
		WHERE id = $1
	`
	var c models.Credential
	var status string
	var expiresAt, revokedAt, usedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.OwnerID, &c.DisplayName, &c.Prefix, &c.SecretHash, &status,
		&expiresAt, &revokedAt, &usedAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("find key: %w", err)
	}
	c.Status = models.Status(status)
	c.ExpiresAt = timePtr(expiresAt)
	c.RevokedAt = timePtr(revokedAt)
	c.LastUsedAt = timePtr(usedAt)
	return &c, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Credential, error) {
	query := `
		SELECT id, owner_id, display_name, prefix, status, expires_at, revoked_at, last_used_at, created_at
		FROM api_keys
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var result []*models.Credential
	for rows.Next() {
		var c models.Credential
		var status string
		var expiresAt, revokedAt, usedAt sql.NullTime
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.DisplayName, &c.Prefix, &status,
			&expiresAt, &revokedAt, &usedAt, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		c.Status = models.Status(status)
		c.ExpiresAt = timePtr(expiresAt)
		c.RevokedAt = timePtr(revokedAt)
		c.LastUsedAt = timePtr(usedAt)
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.Status, revokedAt time.Time) error {
	if status != models.StatusRevoked {
		return fmt.Errorf("unsupported status transition to %q", status)
	}
	query := `
		UPDATE api_keys
		SET status = $2, revoked_at = $3
		WHERE id = $1 AND status = 'ACTIVE'
	`
	res, err := r.db.ExecContext(ctx, query, id, string(status), revokedAt)
	if err != nil {
		return fmt.Errorf("update key status: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE api_keys
		SET last_used_at = $2
		WHERE id = $1 AND status = 'ACTIVE'
	`
	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("touch key: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorStatusConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
