package models

import "time"

// AuditAction names a lifecycle event.
type AuditAction string

const (
	AuditGenerated AuditAction = "GENERATED"
	AuditRevoked   AuditAction = "REVOKED"
	AuditRotated   AuditAction = "ROTATED"
	AuditUsed      AuditAction = "USED"
)

// Metadata keys written by the key service.
const (
	MetaReason      = "reason"
	MetaNewKeyID    = "new_key_id"
	MetaRotatedFrom = "rotated_from"
	MetaPrefix      = "prefix"
)

// AuditEvent is an immutable record of a lifecycle action. It references the
// credential and its owner by id only, so history survives any later change
// to the credential row.
type AuditEvent struct {
	ID            string            `json:"id"`
	CredentialID  string            `json:"credential_id"`
	OwnerID       string            `json:"owner_id"`
	Action        AuditAction       `json:"action"`
	OccurredAt    time.Time         `json:"occurred_at"`
	SourceAddress string            `json:"source_address,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
