// Package client talks to the keykeeper gRPC endpoint on behalf of the CLI.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUnavailable     = errors.New("server unavailable")
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.KeyServiceClient
	accessToken string
	timeout     time.Duration
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a connection to endpointURL. No network traffic
// happens until the first call.
func NewGRPCClient(endpointURL, accessToken string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, timeout: timeout}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewKeyServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// mapError turns transport failures into client errors. Other statuses keep
// their server message, which is safe to show.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthenticated
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return errors.New(st.Message())
	}
}

func (s *GRPCClient) Generate(ctx context.Context, displayName string) (*pb.GenerateKeyResponse, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GenerateKey(ctx, &pb.GenerateKeyRequest{DisplayName: displayName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) List(ctx context.Context) ([]*pb.Key, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListKeys(ctx, &pb.ListKeysRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Keys, nil
}

func (s *GRPCClient) Get(ctx context.Context, keyID string) (*pb.Key, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetKey(ctx, &pb.GetKeyRequest{KeyId: keyID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Key, nil
}

func (s *GRPCClient) Revoke(ctx context.Context, keyID, reason string) (*pb.Key, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.RevokeKey(ctx, &pb.RevokeKeyRequest{KeyId: keyID, Reason: reason})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Key, nil
}

func (s *GRPCClient) Rotate(ctx context.Context, keyID, displayName string) (*pb.RotateKeyResponse, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.RotateKey(ctx, &pb.RotateKeyRequest{KeyId: keyID, DisplayName: displayName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RecordUse(ctx context.Context, keyID string) (*pb.Key, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.RecordKeyUse(ctx, &pb.RecordKeyUseRequest{KeyId: keyID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Key, nil
}

func (s *GRPCClient) Audit(ctx context.Context, keyID string) ([]*pb.AuditEvent, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetKeyAudit(ctx, &pb.GetKeyAuditRequest{KeyId: keyID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Events, nil
}

func (s *GRPCClient) Export(ctx context.Context) (*pb.ExportAuditResponse, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ExportAudit(ctx, &pb.ExportAuditRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}
