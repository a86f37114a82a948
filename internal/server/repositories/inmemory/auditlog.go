package inmemory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/auditlog"
	"github.com/google/uuid"
)

var _ auditlog.Repository = (*auditRepo)(nil)

type auditRepo struct {
	with func(func(*state) error) error
}

func (r *auditRepo) Append(ctx context.Context, e *models.AuditEvent) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	err := r.with(func(s *state) error {
		s.events = append(s.events, copyEvent(e))
		return nil
	})
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (r *auditRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.AuditEvent, error) {
	return r.list(func(e *models.AuditEvent) bool { return e.OwnerID == ownerID }, limit)
}

func (r *auditRepo) ListByCredential(ctx context.Context, ownerID, credentialID string) ([]*models.AuditEvent, error) {
	return r.list(func(e *models.AuditEvent) bool {
		return e.OwnerID == ownerID && e.CredentialID == credentialID
	}, 0)
}

func (r *auditRepo) list(match func(*models.AuditEvent) bool, limit int) ([]*models.AuditEvent, error) {
	var out []*models.AuditEvent
	err := r.with(func(s *state) error {
		for _, e := range s.events {
			if match(e) {
				out = append(out, copyEvent(e))
			}
		}
		return nil
	})
	// Append order breaks ties, like the seq column in PostgreSQL.
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}
