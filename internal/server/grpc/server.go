// Package grpc exposes the key service over gRPC with access token
// authentication and the standard health service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/logging"
	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/dmitrijs2005/keykeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type keyService interface {
	Generate(ctx context.Context, ownerID, displayName string) (*services.IssuedKey, error)
	List(ctx context.Context, ownerID string) ([]*models.Credential, error)
	Get(ctx context.Context, ownerID, keyID string) (*models.Credential, error)
	Revoke(ctx context.Context, ownerID, keyID, reason string) (*models.Credential, error)
	Rotate(ctx context.Context, ownerID, keyID, newDisplayName string) (*services.RotatedKey, error)
	RecordUse(ctx context.Context, ownerID, keyID string) (*models.Credential, error)
	AuditTrail(ctx context.Context, ownerID, keyID string) ([]*models.AuditEvent, error)
}

type archiveService interface {
	Export(ctx context.Context, ownerID string) (*services.AuditExport, error)
}

type GRPCServer struct {
	pb.UnimplementedKeyServiceServer
	address        string
	keys           keyService
	archive        archiveService
	logger         logging.Logger
	jwtSecret      []byte
	requestTimeout time.Duration
	health         *health.Server
}

// NewGRPCServer builds the server. archive may be nil, in which case
// ExportAudit answers Unimplemented.
func NewGRPCServer(address string, l logging.Logger, keys keyService, archive archiveService, secretKey string, requestTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:        address,
		keys:           keys,
		archive:        archive,
		logger:         l.With("module", "grpc_server"),
		jwtSecret:      []byte(secretKey),
		requestTimeout: requestTimeout,
		health:         health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.deadlineInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterKeyServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.KeyService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
