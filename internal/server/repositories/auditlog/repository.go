// Package auditlog declares the append-only audit log of key lifecycle events.
package auditlog

import (
	"context"

	"github.com/dmitrijs2005/keykeeper/internal/server/models"
)

// Repository is append-only: events are never updated or deleted.
type Repository interface {
	// Append stores e and returns its id. An empty ID is generated.
	Append(ctx context.Context, e *models.AuditEvent) (string, error)

	// ListByOwner returns the owner's events oldest first. A limit <= 0
	// returns all of them.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.AuditEvent, error)

	// ListByCredential returns the events of one credential oldest first,
	// restricted to ownerID.
	ListByCredential(ctx context.Context, ownerID, credentialID string) ([]*models.AuditEvent, error)
}
