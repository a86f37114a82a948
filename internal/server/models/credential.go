// Package models defines server-side data models persisted in the database.
package models

import "time"

// Status is the lifecycle state of a credential. The only transition is
// ACTIVE → REVOKED.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusRevoked Status = "REVOKED"
)

// Credential is an issued API key. The raw secret is never stored; only its
// one-way hash and a short display prefix are.
type Credential struct {
	ID          string
	OwnerID     string
	DisplayName string
	Prefix      string
	// SecretHash is set once at creation and never leaves the service.
	SecretHash string
	Status     Status
	ExpiresAt  *time.Time
	RevokedAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// Redacted returns a copy of c without the secret hash.
func (c *Credential) Redacted() *Credential {
	if c == nil {
		return nil
	}
	out := *c
	out.SecretHash = ""
	return &out
}

// IsActive reports whether c can still be used, revoked or rotated.
func (c *Credential) IsActive() bool {
	return c.Status == StatusActive
}
