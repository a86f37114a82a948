package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// keyToPB never carries the secret hash.
func keyToPB(c *models.Credential) *pb.Key {
	if c == nil {
		return nil
	}
	return &pb.Key{
		Id:          c.ID,
		DisplayName: c.DisplayName,
		Prefix:      c.Prefix,
		Status:      string(c.Status),
		CreatedAt:   timestamppb.New(c.CreatedAt),
		ExpiresAt:   optionalTimestamp(c.ExpiresAt),
		RevokedAt:   optionalTimestamp(c.RevokedAt),
		LastUsedAt:  optionalTimestamp(c.LastUsedAt),
	}
}

func auditEventToPB(e *models.AuditEvent) *pb.AuditEvent {
	return &pb.AuditEvent{
		Id:            e.ID,
		KeyId:         e.CredentialID,
		Action:        string(e.Action),
		OccurredAt:    timestamppb.New(e.OccurredAt),
		SourceAddress: e.SourceAddress,
		Metadata:      e.Metadata,
	}
}
