// Package common defines shared constants and sentinel errors used across
// keykeeper packages. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorStatusConflict = errors.New("status conflict")

	// Lifecycle errors returned by the key service.
	ErrQuotaExceeded      = errors.New("active key quota exceeded")
	ErrInvalidIdentity    = errors.New("invalid identity")
	ErrInvalidDisplayName = errors.New("invalid display name")
	ErrAccessDenied       = errors.New("access denied")
	ErrAlreadyRevoked     = errors.New("already revoked")
	ErrEntropySource      = errors.New("entropy source unavailable")

	// Persistence errors surfaced across the service boundary. Transient
	// failures are safe to retry; invariant violations are not.
	ErrPersistenceTransient = errors.New("persistence temporarily unavailable")
	ErrPersistenceInvariant = errors.New("persistence invariant violation")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrorInternal = errors.New("internal error")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrQuotaExceeded, "quota_exceeded"},
	{ErrInvalidIdentity, "invalid_identity"},
	{ErrInvalidDisplayName, "invalid_display_name"},
	{ErrorNotFound, "not_found"},
	{ErrAccessDenied, "access_denied"},
	{ErrAlreadyRevoked, "already_revoked"},
	{ErrEntropySource, "entropy_source"},
	{ErrPersistenceTransient, "persistence_transient"},
	{ErrPersistenceInvariant, "persistence_invariant"},
}

// KindOf returns a stable label for err, suitable for metric labels and
// log fields. A nil error is "ok"; anything unrecognised is "internal".
func KindOf(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}

// IsLifecycleError reports whether err already carries one of the typed
// lifecycle kinds above.
func IsLifecycleError(err error) bool {
	if err == nil {
		return false
	}
	return KindOf(err) != "internal"
}
