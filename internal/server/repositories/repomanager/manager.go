// Package repomanager is the persistence handle injected into services: it
// vends non-transactional repositories and runs work inside one transaction
// spanning the key store and the audit log.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/auditlog"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/keys"
)

// Tx exposes repositories bound to a single transaction.
type Tx interface {
	Keys() keys.Repository
	AuditLog() auditlog.Repository
}

// RepositoryManager is implemented by the PostgreSQL manager in this package
// and by the in-memory manager.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error

	Keys() keys.Repository
	AuditLog() auditlog.Repository

	// WithinTx runs fn in a transaction. It commits when fn returns nil and
	// rolls back otherwise. Repositories obtained from the manager itself must
	// not be used inside fn.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	Close() error
}
