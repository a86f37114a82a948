// Package keys declares the key store: persistent API key records keyed by
// owner and lifecycle status.
package keys

import (
	"context"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/server/models"
)

// Repository defines the operations the key service needs from the key store.
type Repository interface {
	// LockOwner serialises quota-sensitive writes for ownerID until the
	// surrounding transaction ends. Outside a transaction it is a no-op.
	LockOwner(ctx context.Context, ownerID string) error

	// CountActive returns the number of ACTIVE keys owned by ownerID.
	CountActive(ctx context.Context, ownerID string) (int, error)

	// Insert stores a new key and returns its id. An empty ID is generated.
	Insert(ctx context.Context, c *models.Credential) (string, error)

	// FindByID returns the key with the given id or common.ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.Credential, error)

	// ListByOwner returns the owner's keys newest first. SecretHash is never
	// populated.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Credential, error)

	// UpdateStatus moves an ACTIVE key to status. It returns
	// common.ErrorStatusConflict when the key is no longer ACTIVE.
	UpdateStatus(ctx context.Context, id string, status models.Status, revokedAt time.Time) error

	// TouchLastUsed records a use of an ACTIVE key. It returns
	// common.ErrorStatusConflict when the key is no longer ACTIVE.
	TouchLastUsed(ctx context.Context, id string, at time.Time) error
}
