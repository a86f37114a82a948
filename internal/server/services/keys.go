// Package services contains server-side business logic. KeyService runs the
// API key lifecycle (generate, list, revoke, rotate) against the key store
// and the audit log; AuditArchiveService exports audit history to S3.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/dbx"
	"github.com/dmitrijs2005/keykeeper/internal/logging"
	"github.com/dmitrijs2005/keykeeper/internal/server/keycodec"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/keys"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/juju/clock"
)

const (
	// MaxDisplayNameLength is counted in runes after trimming whitespace.
	MaxDisplayNameLength = 64
	maxReasonLength      = 256
	rotatedSuffix        = " (rotated)"
)

// Operation names reported to the Recorder.
const (
	OpGenerate   = "generate"
	OpList       = "list"
	OpGet        = "get"
	OpRevoke     = "revoke"
	OpRotate     = "rotate"
	OpRecordUse  = "record_use"
	OpAuditTrail = "audit_trail"
)

// SecretIssuer produces fresh key material. *keycodec.Codec implements it.
type SecretIssuer interface {
	Issue() (*keycodec.Secret, error)
}

// Recorder receives one observation per completed operation. outcome is
// common.KindOf of the returned error.
type Recorder interface {
	Observe(operation, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string, time.Duration) {}

// IssuedKey is returned once by Generate. RawSecret is not stored anywhere.
type IssuedKey struct {
	Credential *models.Credential
	RawSecret  string
}

// RotatedKey is returned by Rotate: the replacement with its raw secret and
// the now revoked original.
type RotatedKey struct {
	New       *models.Credential
	RawSecret string
	Old       *models.Credential
}

// KeyService enforces ownership, the per-owner active key quota and the
// ACTIVE -> REVOKED state machine. It keeps no mutable state of its own;
// every mutation and its audit event share one transaction.
type KeyService struct {
	repomanager repomanager.RepositoryManager
	issuer      SecretIssuer
	clock       clock.Clock
	logger      logging.Logger
	metrics     Recorder
}

// NewKeyService wires the service. A nil clock, logger or recorder falls back
// to the wall clock, a no-op logger and no metrics.
func NewKeyService(m repomanager.RepositoryManager, issuer SecretIssuer, clk clock.Clock, logger logging.Logger, rec Recorder) *KeyService {
	if clk == nil {
		clk = clock.WallClock
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &KeyService{
		repomanager: m,
		issuer:      issuer,
		clock:       clk,
		logger:      logger.With("module", "keyservice"),
		metrics:     rec,
	}
}

func (s *KeyService) observe(op string, start time.Time, err error) {
	s.metrics.Observe(op, common.KindOf(err), s.clock.Now().Sub(start))
}

func (s *KeyService) now() time.Time {
	return s.clock.Now().UTC()
}

// Generate issues a new ACTIVE key for ownerID. The raw secret in the result
// is the only copy that will ever exist.
func (s *KeyService) Generate(ctx context.Context, ownerID, displayName string) (res *IssuedKey, err error) {
	defer func(start time.Time) { s.observe(OpGenerate, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	name, err := normalizeDisplayName(displayName)
	if err != nil {
		return nil, err
	}

	// Fast rejection before paying for the hash. The authoritative check
	// runs again under the owner lock.
	n, err := s.repomanager.Keys().CountActive(ctx, ownerID)
	if err != nil {
		return nil, s.persistenceError(ctx, OpGenerate, err)
	}
	if n >= common.MaxActiveKeys {
		return nil, quotaError(n)
	}

	secret, err := s.issue(ctx, OpGenerate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cred := &models.Credential{
		OwnerID:     ownerID,
		DisplayName: name,
		Prefix:      secret.Prefix,
		SecretHash:  secret.Hash,
		Status:      models.StatusActive,
		CreatedAt:   now,
	}

	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, tx repomanager.Tx) error {
		if err := tx.Keys().LockOwner(ctx, ownerID); err != nil {
			return err
		}
		n, err := tx.Keys().CountActive(ctx, ownerID)
		if err != nil {
			return err
		}
		if n >= common.MaxActiveKeys {
			return quotaError(n)
		}
		if _, err := tx.Keys().Insert(ctx, cred); err != nil {
			return err
		}
		_, err = tx.AuditLog().Append(ctx, s.event(ctx, models.AuditGenerated, cred, now, map[string]string{
			models.MetaPrefix: cred.Prefix,
		}))
		return err
	})
	if err != nil {
		return nil, s.persistenceError(ctx, OpGenerate, err)
	}

	s.logger.Info(ctx, "key generated", "owner_id", ownerID, "key_id", cred.ID, "prefix", cred.Prefix)
	return &IssuedKey{Credential: cred.Redacted(), RawSecret: secret.Raw}, nil
}

// List returns every key of ownerID, newest first, without secret hashes.
func (s *KeyService) List(ctx context.Context, ownerID string) (res []*models.Credential, err error) {
	defer func(start time.Time) { s.observe(OpList, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	list, err := s.repomanager.Keys().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.persistenceError(ctx, OpList, err)
	}
	out := make([]*models.Credential, 0, len(list))
	for _, c := range list {
		out = append(out, c.Redacted())
	}
	return out, nil
}

// Get returns one of ownerID's keys without its secret hash.
func (s *KeyService) Get(ctx context.Context, ownerID, keyID string) (res *models.Credential, err error) {
	defer func(start time.Time) { s.observe(OpGet, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	c, err := loadOwned(ctx, s.repomanager.Keys(), ownerID, keyID)
	if err != nil {
		return nil, s.persistenceError(ctx, OpGet, err)
	}
	return c.Redacted(), nil
}

// Revoke moves an ACTIVE key to REVOKED. reason, when not blank, is kept in
// the audit event. Revoking twice fails with common.ErrAlreadyRevoked.
func (s *KeyService) Revoke(ctx context.Context, ownerID, keyID, reason string) (res *models.Credential, err error) {
	defer func(start time.Time) { s.observe(OpRevoke, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	reason = truncateRunes(strings.TrimSpace(reason), maxReasonLength)

	var revoked *models.Credential
	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, tx repomanager.Tx) error {
		c, err := loadOwned(ctx, tx.Keys(), ownerID, keyID)
		if err != nil {
			return err
		}
		if !c.IsActive() {
			return fmt.Errorf("key %s: %w", c.ID, common.ErrAlreadyRevoked)
		}
		now := s.now()
		if err := revokeInTx(ctx, tx.Keys(), c, now); err != nil {
			return err
		}
		var meta map[string]string
		if reason != "" {
			meta = map[string]string{models.MetaReason: reason}
		}
		if _, err := tx.AuditLog().Append(ctx, s.event(ctx, models.AuditRevoked, c, now, meta)); err != nil {
			return err
		}
		revoked = c
		return nil
	})
	if err != nil {
		return nil, s.persistenceError(ctx, OpRevoke, err)
	}

	s.logger.Info(ctx, "key revoked", "owner_id", ownerID, "key_id", revoked.ID)
	return revoked.Redacted(), nil
}

// Rotate atomically revokes an ACTIVE key and issues its replacement for the
// same owner. The replacement is named newDisplayName, or "<old> (rotated)"
// when newDisplayName is blank. Rotation does not change the active count,
// so it is allowed even when the owner is at the quota.
func (s *KeyService) Rotate(ctx context.Context, ownerID, keyID, newDisplayName string) (res *RotatedKey, err error) {
	defer func(start time.Time) { s.observe(OpRotate, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}

	// All preconditions are checked before the secret is hashed, and again
	// inside the transaction. The key checks come before the name check.
	old, err := loadOwned(ctx, s.repomanager.Keys(), ownerID, keyID)
	if err != nil {
		return nil, s.persistenceError(ctx, OpRotate, err)
	}
	if !old.IsActive() {
		return nil, rotateRevokedError(old.ID)
	}

	var name string
	if strings.TrimSpace(newDisplayName) != "" {
		if name, err = normalizeDisplayName(newDisplayName); err != nil {
			return nil, err
		}
	}

	secret, err := s.issue(ctx, OpRotate)
	if err != nil {
		return nil, err
	}

	var result *RotatedKey
	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, tx repomanager.Tx) error {
		if err := tx.Keys().LockOwner(ctx, ownerID); err != nil {
			return err
		}
		old, err := loadOwned(ctx, tx.Keys(), ownerID, keyID)
		if err != nil {
			return err
		}
		if !old.IsActive() {
			return rotateRevokedError(old.ID)
		}

		now := s.now()
		if err := revokeInTx(ctx, tx.Keys(), old, now); err != nil {
			if errors.Is(err, common.ErrAlreadyRevoked) {
				return rotateRevokedError(old.ID)
			}
			return err
		}

		newName := name
		if newName == "" {
			newName = rotatedName(old.DisplayName)
		}
		fresh := &models.Credential{
			OwnerID:     ownerID,
			DisplayName: newName,
			Prefix:      secret.Prefix,
			SecretHash:  secret.Hash,
			Status:      models.StatusActive,
			CreatedAt:   now,
		}
		if _, err := tx.Keys().Insert(ctx, fresh); err != nil {
			return err
		}

		if _, err := tx.AuditLog().Append(ctx, s.event(ctx, models.AuditRotated, old, now, map[string]string{
			models.MetaNewKeyID: fresh.ID,
		})); err != nil {
			return err
		}
		if _, err := tx.AuditLog().Append(ctx, s.event(ctx, models.AuditGenerated, fresh, now, map[string]string{
			models.MetaRotatedFrom: old.ID,
			models.MetaPrefix:      fresh.Prefix,
		})); err != nil {
			return err
		}

		result = &RotatedKey{New: fresh.Redacted(), RawSecret: secret.Raw, Old: old.Redacted()}
		return nil
	})
	if err != nil {
		return nil, s.persistenceError(ctx, OpRotate, err)
	}

	s.logger.Info(ctx, "key rotated", "owner_id", ownerID, "old_key_id", result.Old.ID, "new_key_id", result.New.ID)
	return result, nil
}

// RecordUse notes that an ACTIVE key was presented: it sets LastUsedAt and
// appends a USED event.
func (s *KeyService) RecordUse(ctx context.Context, ownerID, keyID string) (res *models.Credential, err error) {
	defer func(start time.Time) { s.observe(OpRecordUse, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}

	var used *models.Credential
	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, tx repomanager.Tx) error {
		c, err := loadOwned(ctx, tx.Keys(), ownerID, keyID)
		if err != nil {
			return err
		}
		if !c.IsActive() {
			return fmt.Errorf("key %s: %w", c.ID, common.ErrAlreadyRevoked)
		}
		now := s.now()
		if err := tx.Keys().TouchLastUsed(ctx, c.ID, now); err != nil {
			if errors.Is(err, common.ErrorStatusConflict) {
				return fmt.Errorf("key %s: %w", c.ID, common.ErrAlreadyRevoked)
			}
			return err
		}
		c.LastUsedAt = &now
		if _, err := tx.AuditLog().Append(ctx, s.event(ctx, models.AuditUsed, c, now, nil)); err != nil {
			return err
		}
		used = c
		return nil
	})
	if err != nil {
		return nil, s.persistenceError(ctx, OpRecordUse, err)
	}

	s.logger.Debug(ctx, "key use recorded", "owner_id", ownerID, "key_id", used.ID)
	return used.Redacted(), nil
}

// AuditTrail returns the events of one of ownerID's keys, oldest first.
func (s *KeyService) AuditTrail(ctx context.Context, ownerID, keyID string) (res []*models.AuditEvent, err error) {
	defer func(start time.Time) { s.observe(OpAuditTrail, start, err) }(s.clock.Now())

	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	c, err := loadOwned(ctx, s.repomanager.Keys(), ownerID, keyID)
	if err != nil {
		return nil, s.persistenceError(ctx, OpAuditTrail, err)
	}
	events, err := s.repomanager.AuditLog().ListByCredential(ctx, ownerID, c.ID)
	if err != nil {
		return nil, s.persistenceError(ctx, OpAuditTrail, err)
	}
	return events, nil
}

func (s *KeyService) issue(ctx context.Context, op string) (*keycodec.Secret, error) {
	secret, err := s.issuer.Issue()
	if err == nil {
		return secret, nil
	}
	s.logger.Error(ctx, "secret issue failed", "operation", op, "error", err)
	if errors.Is(err, common.ErrEntropySource) {
		return nil, fmt.Errorf("%s: %w", op, common.ErrEntropySource)
	}
	return nil, fmt.Errorf("%s: %w", op, common.ErrorInternal)
}

func (s *KeyService) event(ctx context.Context, action models.AuditAction, c *models.Credential, at time.Time, meta map[string]string) *models.AuditEvent {
	return &models.AuditEvent{
		CredentialID:  c.ID,
		OwnerID:       c.OwnerID,
		Action:        action,
		OccurredAt:    at,
		SourceAddress: SourceAddress(ctx),
		Metadata:      meta,
	}
}

func (s *KeyService) persistenceError(ctx context.Context, op string, err error) error {
	return classifyError(ctx, s.logger, op, err)
}

// classifyError passes lifecycle errors through and hides storage detail
// behind ErrPersistenceTransient or ErrPersistenceInvariant. The detail is
// logged.
func classifyError(ctx context.Context, logger logging.Logger, op string, err error) error {
	switch {
	case errors.Is(err, dbx.ErrCommitFailed), errors.Is(err, dbx.ErrRollbackFailed):
		logger.Error(ctx, "transaction outcome unknown", "operation", op, "error", err)
		return fmt.Errorf("%s: transaction outcome unknown: %w", op, common.ErrPersistenceInvariant)
	case common.IsLifecycleError(err):
		logger.Debug(ctx, "operation rejected", "operation", op, "reason", common.KindOf(err))
		return err
	case dbx.IsTransient(err):
		logger.Warn(ctx, "persistence unavailable", "operation", op, "error", err)
		return fmt.Errorf("%s: %w", op, common.ErrPersistenceTransient)
	default:
		logger.Error(ctx, "persistence failure", "operation", op, "error", err)
		return fmt.Errorf("%s: %w", op, common.ErrPersistenceInvariant)
	}
}

// loadOwned applies the identity, existence and ownership checks in that
// order.
func loadOwned(ctx context.Context, repo keys.Repository, ownerID, keyID string) (*models.Credential, error) {
	id, err := parseKeyID(keyID)
	if err != nil {
		return nil, err
	}
	c, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("key %s: %w", id, common.ErrorNotFound)
		}
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, fmt.Errorf("key %s: %w", id, common.ErrAccessDenied)
	}
	return c, nil
}

// revokeInTx flips c to REVOKED through the conditional update. Losing a race
// with another revocation reports ErrAlreadyRevoked.
func revokeInTx(ctx context.Context, repo keys.Repository, c *models.Credential, at time.Time) error {
	if err := repo.UpdateStatus(ctx, c.ID, models.StatusRevoked, at); err != nil {
		if errors.Is(err, common.ErrorStatusConflict) {
			return fmt.Errorf("key %s: %w", c.ID, common.ErrAlreadyRevoked)
		}
		return err
	}
	c.Status = models.StatusRevoked
	c.RevokedAt = &at
	return nil
}

func parseKeyID(keyID string) (string, error) {
	u, err := uuid.Parse(keyID)
	if err != nil || len(keyID) != 36 {
		return "", fmt.Errorf("%w: %q is not a key id", common.ErrInvalidIdentity, keyID)
	}
	return u.String(), nil
}

func checkOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: empty owner", common.ErrInvalidIdentity)
	}
	return nil
}

func normalizeDisplayName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: must not be empty", common.ErrInvalidDisplayName)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: must be valid UTF-8", common.ErrInvalidDisplayName)
	}
	if n := utf8.RuneCountInString(name); n > MaxDisplayNameLength {
		return "", fmt.Errorf("%w: %d characters, at most %d allowed", common.ErrInvalidDisplayName, n, MaxDisplayNameLength)
	}
	return name, nil
}

func rotatedName(old string) string {
	keep := MaxDisplayNameLength - utf8.RuneCountInString(rotatedSuffix)
	return truncateRunes(old, keep) + rotatedSuffix
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func quotaError(active int) error {
	return fmt.Errorf("%w: %d of %d keys active", common.ErrQuotaExceeded, active, common.MaxActiveKeys)
}

func rotateRevokedError(id string) error {
	return fmt.Errorf("cannot rotate a revoked credential %s: %w", id, common.ErrAlreadyRevoked)
}
