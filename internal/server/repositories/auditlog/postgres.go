package auditlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/keykeeper/internal/dbx"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/google/uuid"
)

var _ Repository = (*PostgresRepository)(nil)

// PostgresRepository stores audit events in the audit_events table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, e *models.AuditEvent) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	meta := e.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encode audit metadata: %w", err)
	}
	source := sql.NullString{String: e.SourceAddress, Valid: e.SourceAddress != ""}

	query := `
		INSERT INTO audit_events (id, credential_id, owner_id, action, occurred_at, source_address, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		e.ID, e.CredentialID, e.OwnerID, string(e.Action), e.OccurredAt, source, string(b))
	if err != nil {
		return "", fmt.Errorf("append audit event: %w", err)
	}
	return e.ID, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.AuditEvent, error) {
	query := `
		SELECT id, credential_id, owner_id, action, occurred_at, source_address, metadata
		FROM audit_events
		WHERE owner_id = $1
		ORDER BY occurred_at, seq
		LIMIT $2
	`
	// LIMIT NULL means no limit.
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.db.QueryContext(ctx, query, ownerID, lim)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return scanEvents(rows)
}

func (r *PostgresRepository) ListByCredential(ctx context.Context, ownerID, credentialID string) ([]*models.AuditEvent, error) {
	query := `
		SELECT id, credential_id, owner_id, action, occurred_at, source_address, metadata
		FROM audit_events
		WHERE owner_id = $1 AND credential_id = $2
		ORDER BY occurred_at, seq
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, credentialID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*models.AuditEvent, error) {
	defer rows.Close()

	var result []*models.AuditEvent
	for rows.Next() {
		var e models.AuditEvent
		var action string
		var source sql.NullString
		var meta []byte
		if err := rows.Scan(&e.ID, &e.CredentialID, &e.OwnerID, &action, &e.OccurredAt, &source, &meta); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Action = models.AuditAction(action)
		e.SourceAddress = source.String
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &e.Metadata); err != nil {
				return nil, fmt.Errorf("decode audit metadata: %w", err)
			}
		}
		if len(e.Metadata) == 0 {
			e.Metadata = nil
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return result, nil
}
