package grpc

import (
	"errors"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeByError = []struct {
	err  error
	code codes.Code
}{
	{common.ErrQuotaExceeded, codes.ResourceExhausted},
	{common.ErrInvalidIdentity, codes.InvalidArgument},
	{common.ErrInvalidDisplayName, codes.InvalidArgument},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrAccessDenied, codes.PermissionDenied},
	{common.ErrAlreadyRevoked, codes.FailedPrecondition},
	{common.ErrPersistenceTransient, codes.Unavailable},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
}

// toStatus maps a service error to a gRPC status. Messages of errors that
// end up as Internal are not sent to the caller.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range codeByError {
		if errors.Is(err, m.err) {
			return status.Error(m.code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}
