package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/server/auth"
	"github.com/dmitrijs2005/keykeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const ownerIDKey ctxKey = "ownerID"

// healthPrefix marks methods served without an access token.
const healthPrefix = "/grpc.health.v1.Health/"

// OwnerIDFromContext returns the owner id placed by the access token
// interceptor.
func OwnerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ownerIDKey).(string)
	return id, ok && id != ""
}

// deadlineInterceptor bounds requests that arrive without a deadline.
func (s *GRPCServer) deadlineInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := ctx.Deadline(); !ok && s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}
	return handler(ctx, req)
}

// accessTokenInterceptor authenticates every key service call. The token
// subject becomes the owner id and the peer address is recorded as the
// source address of audit events.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if strings.HasPrefix(info.FullMethod, healthPrefix) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	ownerID, err := auth.GetOwnerIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, toStatus(err)
	}

	ctx = context.WithValue(ctx, ownerIDKey, ownerID)
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		ctx = services.WithSourceAddress(ctx, p.Addr.String())
	}
	return handler(ctx, req)
}

// loggingInterceptor logs each call with its status code and duration.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Debug(ctx, "request served", args...)
	}
	return resp, err
}
