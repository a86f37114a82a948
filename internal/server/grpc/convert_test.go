package grpc

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyToPB(t *testing.T) {
	assert.Nil(t, keyToPB(nil))

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	revoked := created.Add(time.Hour)
	k := keyToPB(&models.Credential{
		ID:          "id-1",
		DisplayName: "ci",
		Prefix:      "kk_0123abcd",
		SecretHash:  "hash",
		Status:      models.StatusRevoked,
		CreatedAt:   created,
		RevokedAt:   &revoked,
	})

	assert.Equal(t, "id-1", k.GetId())
	assert.Equal(t, "REVOKED", k.GetStatus())
	assert.Equal(t, created, k.GetCreatedAt().AsTime())
	assert.Equal(t, revoked, k.GetRevokedAt().AsTime())
	assert.Nil(t, k.GetExpiresAt())
	assert.Nil(t, k.GetLastUsedAt())
}

func TestAuditEventToPB(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := auditEventToPB(&models.AuditEvent{
		ID:            "ev-1",
		CredentialID:  "id-1",
		OwnerID:       "alice",
		Action:        models.AuditRevoked,
		OccurredAt:    at,
		SourceAddress: "192.0.2.1",
		Metadata:      map[string]string{"reason": "leak"},
	})

	require.NotNil(t, e)
	assert.Equal(t, "id-1", e.GetKeyId())
	assert.Equal(t, "REVOKED", e.GetAction())
	assert.Equal(t, at, e.GetOccurredAt().AsTime())
	assert.Equal(t, map[string]string{"reason": "leak"}, e.GetMetadata())
}
