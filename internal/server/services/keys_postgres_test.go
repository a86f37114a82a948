package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyColumns = []string{"id", "owner_id", "display_name", "prefix", "secret_hash", "status", "expires_at", "revoked_at", "last_used_at", "created_at"}

func newPostgresKeyService(t *testing.T) (*KeyService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	m := repomanager.NewPostgresRepositoryManager(db)
	return NewKeyService(m, &fakeIssuer{}, testclock.NewClock(epoch), nil, nil), mock
}

func TestRevoke_Postgres_SingleTransaction(t *testing.T) {
	svc, mock := newPostgresKeyService(t)
	id := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM\s+api_keys\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(keyColumns).
			AddRow(id, "alice", "k", "kk_00000001", "hash", "ACTIVE", nil, nil, nil, epoch))
	mock.ExpectExec(`UPDATE\s+api_keys\s+SET\s+status`).
		WithArgs(id, "REVOKED", epoch).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT\s+INTO\s+audit_events`).
		WithArgs(sqlmock.AnyArg(), id, "alice", "REVOKED", epoch, nil, `{"reason":"rotated out"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, err := svc.Revoke(context.Background(), "alice", id, "rotated out")
	require.NoError(t, err)
	assert.Empty(t, c.SecretHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRevoke_Postgres_LostRaceIsAlreadyRevoked(t *testing.T) {
	svc, mock := newPostgresKeyService(t)
	id := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM\s+api_keys`).
		WillReturnRows(sqlmock.NewRows(keyColumns).
			AddRow(id, "alice", "k", "kk_00000001", "hash", "ACTIVE", nil, nil, nil, epoch))
	mock.ExpectExec(`UPDATE\s+api_keys`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Revoke(context.Background(), "alice", id, "")
	require.ErrorIs(t, err, common.ErrAlreadyRevoked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRevoke_Postgres_AuditFailureRollsBack(t *testing.T) {
	svc, mock := newPostgresKeyService(t)
	id := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM\s+api_keys`).
		WillReturnRows(sqlmock.NewRows(keyColumns).
			AddRow(id, "alice", "k", "kk_00000001", "hash", "ACTIVE", nil, nil, nil, epoch))
	mock.ExpectExec(`UPDATE\s+api_keys`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT\s+INTO\s+audit_events`).WillReturnError(errors.New("audit_events is append-only"))
	mock.ExpectRollback()

	_, err := svc.Revoke(context.Background(), "alice", id, "")
	require.ErrorIs(t, err, common.ErrPersistenceInvariant)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerate_Postgres_LocksOwnerAndRechecks(t *testing.T) {
	svc, mock := newPostgresKeyService(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	_, err := svc.Generate(context.Background(), "alice", "k")
	require.ErrorIs(t, err, common.ErrQuotaExceeded)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerate_Postgres_TransientBegin(t *testing.T) {
	svc, mock := newPostgresKeyService(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin().WillReturnError(context.DeadlineExceeded)

	_, err := svc.Generate(context.Background(), "alice", "k")
	require.ErrorIs(t, err, common.ErrPersistenceTransient)
}

func TestGenerate_Postgres_Commits(t *testing.T) {
	svc, mock := newPostgresKeyService(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT\s+INTO\s+api_keys`).
		WithArgs(sqlmock.AnyArg(), "alice", "k", sqlmock.AnyArg(), sqlmock.AnyArg(), "ACTIVE", nil, epoch).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT\s+INTO\s+audit_events`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "alice", "GENERATED", epoch, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := svc.Generate(context.Background(), "alice", "k")
	require.NoError(t, err)
	assert.NotEmpty(t, res.RawSecret)
	require.NoError(t, mock.ExpectationsWereMet())
}
