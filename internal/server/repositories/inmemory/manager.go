// Package inmemory provides a process-local RepositoryManager used for
// development (DSN "memory://") and engine tests. Transactions hold a
// store-wide lock, work on a private copy of the data and publish it only
// when the transaction function succeeds.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/auditlog"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/keys"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/repomanager"
)

// DSN selects the in-memory manager.
const DSN = "memory://"

var _ repomanager.RepositoryManager = (*Manager)(nil)

type state struct {
	keys   map[string]*models.Credential
	events []*models.AuditEvent
}

func (s *state) clone() *state {
	c := &state{
		keys:   make(map[string]*models.Credential, len(s.keys)),
		events: make([]*models.AuditEvent, len(s.events)),
	}
	for id, k := range s.keys {
		c.keys[id] = copyCredential(k)
	}
	// Events are immutable once appended, so sharing them is safe.
	copy(c.events, s.events)
	return c
}

// Manager is safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	state *state
}

func New() *Manager {
	return &Manager{state: &state{keys: map[string]*models.Credential{}}}
}

// view runs fn against the committed state under the store lock.
func (m *Manager) view(fn func(*state) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.state)
}

func (m *Manager) RunMigrations(context.Context) error { return nil }

func (m *Manager) Keys() keys.Repository {
	return &keyRepo{with: m.view}
}

func (m *Manager) AuditLog() auditlog.Repository {
	return &auditRepo{with: m.view}
}

// WithinTx serialises with every other transaction and repository call.
// A panic in fn leaves the committed state untouched.
func (m *Manager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repomanager.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.clone()
	direct := func(f func(*state) error) error { return f(work) }
	if err := fn(ctx, memTx{keys: &keyRepo{with: direct}, audit: &auditRepo{with: direct}}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *Manager) Close() error { return nil }

type memTx struct {
	keys  *keyRepo
	audit *auditRepo
}

func (t memTx) Keys() keys.Repository         { return t.keys }
func (t memTx) AuditLog() auditlog.Repository { return t.audit }

func copyCredential(c *models.Credential) *models.Credential {
	out := *c
	out.ExpiresAt = copyTime(c.ExpiresAt)
	out.RevokedAt = copyTime(c.RevokedAt)
	out.LastUsedAt = copyTime(c.LastUsedAt)
	return &out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyEvent(e *models.AuditEvent) *models.AuditEvent {
	out := *e
	if e.Metadata != nil {
		out.Metadata = make(map[string]string, len(e.Metadata))
		for k, v := range e.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}
