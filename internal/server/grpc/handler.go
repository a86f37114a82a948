package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.KeyServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) owner(ctx context.Context) (string, error) {
	id, ok := OwnerIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing owner")
	}
	return id, nil
}

func (s *GRPCServer) GenerateKey(ctx context.Context, req *pb.GenerateKeyRequest) (*pb.GenerateKeyResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.keys.Generate(ctx, owner, req.GetDisplayName())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GenerateKeyResponse{Key: keyToPB(res.Credential), Secret: res.RawSecret}, nil
}

func (s *GRPCServer) ListKeys(ctx context.Context, _ *pb.ListKeysRequest) (*pb.ListKeysResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.keys.List(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.ListKeysResponse{Keys: make([]*pb.Key, 0, len(list))}
	for _, c := range list {
		out.Keys = append(out.Keys, keyToPB(c))
	}
	return out, nil
}

func (s *GRPCServer) GetKey(ctx context.Context, req *pb.GetKeyRequest) (*pb.GetKeyResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.keys.Get(ctx, owner, req.GetKeyId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetKeyResponse{Key: keyToPB(c)}, nil
}

func (s *GRPCServer) RevokeKey(ctx context.Context, req *pb.RevokeKeyRequest) (*pb.RevokeKeyResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.keys.Revoke(ctx, owner, req.GetKeyId(), req.GetReason())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RevokeKeyResponse{Key: keyToPB(c)}, nil
}

func (s *GRPCServer) RotateKey(ctx context.Context, req *pb.RotateKeyRequest) (*pb.RotateKeyResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.keys.Rotate(ctx, owner, req.GetKeyId(), req.GetDisplayName())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RotateKeyResponse{Key: keyToPB(res.New), Secret: res.RawSecret, Revoked: keyToPB(res.Old)}, nil
}

func (s *GRPCServer) RecordKeyUse(ctx context.Context, req *pb.RecordKeyUseRequest) (*pb.RecordKeyUseResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.keys.RecordUse(ctx, owner, req.GetKeyId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RecordKeyUseResponse{Key: keyToPB(c)}, nil
}

func (s *GRPCServer) GetKeyAudit(ctx context.Context, req *pb.GetKeyAuditRequest) (*pb.GetKeyAuditResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.keys.AuditTrail(ctx, owner, req.GetKeyId())
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.GetKeyAuditResponse{Events: make([]*pb.AuditEvent, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, auditEventToPB(e))
	}
	return out, nil
}

func (s *GRPCServer) ExportAudit(ctx context.Context, _ *pb.ExportAuditRequest) (*pb.ExportAuditResponse, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	if s.archive == nil {
		return nil, status.Error(codes.Unimplemented, "audit export is not configured")
	}
	exp, err := s.archive.Export(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExportAuditResponse{
		ObjectKey: exp.Key,
		Url:       exp.URL,
		Events:    int32(exp.Events),
		ExpiresAt: timestamppb.New(exp.ExpiresAt),
	}, nil
}
