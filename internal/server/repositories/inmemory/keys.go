package inmemory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/keys"
	"github.com/google/uuid"
)

var _ keys.Repository = (*keyRepo)(nil)

type keyRepo struct {
	with func(func(*state) error) error
}

// LockOwner is a no-op: transactions already hold the store-wide lock.
func (r *keyRepo) LockOwner(context.Context, string) error { return nil }

func (r *keyRepo) CountActive(ctx context.Context, ownerID string) (int, error) {
	n := 0
	err := r.with(func(s *state) error {
		for _, k := range s.keys {
			if k.OwnerID == ownerID && k.IsActive() {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *keyRepo) Insert(ctx context.Context, c *models.Credential) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.with(func(s *state) error {
		if _, ok := s.keys[c.ID]; ok {
			return fmt.Errorf("insert key: duplicate id %s", c.ID)
		}
		s.keys[c.ID] = copyCredential(c)
		return nil
	})
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (r *keyRepo) FindByID(ctx context.Context, id string) (*models.Credential, error) {
	var out *models.Credential
	err := r.with(func(s *state) error {
		k, ok := s.keys[id]
		if !ok {
			return common.ErrorNotFound
		}
		out = copyCredential(k)
		return nil
	})
	return out, err
}

func (r *keyRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Credential, error) {
	var out []*models.Credential
	err := r.with(func(s *state) error {
		for _, k := range s.keys {
			if k.OwnerID == ownerID {
				c := copyCredential(k)
				c.SecretHash = ""
				out = append(out, c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, err
}

func (r *keyRepo) UpdateStatus(ctx context.Context, id string, status models.Status, revokedAt time.Time) error {
	if status != models.StatusRevoked {
		return fmt.Errorf("unsupported status transition to %q", status)
	}
	return r.with(func(s *state) error {
		k, ok := s.keys[id]
		if !ok || !k.IsActive() {
			return common.ErrorStatusConflict
		}
		k.Status = status
		at := revokedAt
		k.RevokedAt = &at
		return nil
	})
}

func (r *keyRepo) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	return r.with(func(s *state) error {
		k, ok := s.keys[id]
		if !ok || !k.IsActive() {
			return common.ErrorStatusConflict
		}
		t := at
		k.LastUsedAt = &t
		return nil
	})
}
