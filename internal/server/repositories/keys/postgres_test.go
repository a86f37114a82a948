package keys

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/dmitrijs2005/keykeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyColumns = []string{"id", "owner_id", "display_name", "prefix", "secret_hash", "status", "expires_at", "revoked_at", "last_used_at", "created_at"}

var listColumns = []string{"id", "owner_id", "display_name", "prefix", "status", "expires_at", "revoked_at", "last_used_at", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestLockOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtextextended\(\$1, 0\)\)`).
		WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.LockOwner(context.Background(), "owner-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLockOwner_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`pg_advisory_xact_lock`).WillReturnError(errors.New("db down"))

	err := repo.LockOwner(context.Background(), "owner-1")
	require.Error(t, err)
	assert.Regexp(t, `lock owner: .*db down`, err.Error())
}

func TestCountActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+api_keys\s+WHERE\s+owner_id\s*=\s*\$1\s+AND\s+status\s*=\s*'ACTIVE'`
	mock.ExpectQuery(q).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountActive(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountActive_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+COUNT`).WillReturnError(errors.New("timeout"))

	_, err := repo.CountActive(context.Background(), "owner-1")
	require.Error(t, err)
	assert.Regexp(t, `count active keys: .*timeout`, err.Error())
}

func TestInsert_GeneratesID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := &models.Credential{
		OwnerID:     "owner-1",
		DisplayName: "ci",
		Prefix:      "kk_01234567",
		SecretHash:  "$2a$10$abc",
		Status:      models.StatusActive,
		CreatedAt:   created,
	}

	q := `(?s)^\s*INSERT\s+INTO\s+api_keys\s+\(id, owner_id, display_name, prefix, secret_hash, status, expires_at, created_at\)\s+VALUES\s+\(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\)\s*$`
	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "owner-1", "ci", "kk_01234567", "$2a$10$abc", "ACTIVE", nil, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Insert(context.Background(), c)
	require.NoError(t, err)
	_, perr := uuid.Parse(id)
	require.NoError(t, perr)
	assert.Equal(t, id, c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_KeepsGivenID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec(`INSERT\s+INTO\s+api_keys`).
		WithArgs(id, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Insert(context.Background(), &models.Credential{ID: id, Status: models.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+api_keys`).WillReturnError(errors.New("db down"))

	_, err := repo.Insert(context.Background(), &models.Credential{Status: models.StatusActive})
	require.Error(t, err)
	assert.Regexp(t, `insert key: .*db down`, err.Error())
}

func TestFindByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().Add(-time.Hour).UTC()
	revoked := time.Now().UTC()
	mock.ExpectQuery(`(?s)SELECT\s+id, owner_id, .*secret_hash.*FROM\s+api_keys\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("k1").
		WillReturnRows(sqlmock.NewRows(keyColumns).
			AddRow("k1", "owner-1", "ci", "kk_01234567", "$2a$10$abc", "REVOKED", nil, revoked, nil, created))

	c, err := repo.FindByID(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", c.OwnerID)
	assert.Equal(t, models.StatusRevoked, c.Status)
	assert.Equal(t, "$2a$10$abc", c.SecretHash)
	require.NotNil(t, c.RevokedAt)
	assert.True(t, c.RevokedAt.Equal(revoked))
	assert.Nil(t, c.ExpiresAt)
	assert.Nil(t, c.LastUsedAt)
	assert.True(t, c.CreatedAt.Equal(created))
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+api_keys`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+api_keys`).WithArgs("k1").WillReturnError(errors.New("db err"))

	_, err := repo.FindByID(context.Background(), "k1")
	if err == nil || !regexp.MustCompile(`find key: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByOwner_OrderedWithoutHash(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	q := `(?s)SELECT\s+id, owner_id, display_name, prefix, status, expires_at, revoked_at, last_used_at, created_at\s+FROM\s+api_keys\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC,\s+id\s+DESC`
	mock.ExpectQuery(q).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(listColumns).
			AddRow("k2", "owner-1", "new", "kk_22222222", "ACTIVE", nil, nil, now, now).
			AddRow("k1", "owner-1", "old", "kk_11111111", "REVOKED", nil, now, nil, now.Add(-time.Hour)))

	list, err := repo.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "k2", list[0].ID)
	assert.Equal(t, "k1", list[1].ID)
	for _, c := range list {
		assert.Empty(t, c.SecretHash)
	}
	require.NotNil(t, list[0].LastUsedAt)
	require.NotNil(t, list[1].RevokedAt)
}

func TestListByOwner_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+api_keys`).WillReturnError(errors.New("db err"))

	_, err := repo.ListByOwner(context.Background(), "owner-1")
	require.Error(t, err)
	assert.Regexp(t, `list keys: .*db err`, err.Error())
}

func TestListByOwner_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM\s+api_keys`).
		WillReturnRows(sqlmock.NewRows(listColumns).
			AddRow("k1", "owner-1", "a", "kk_11111111", "ACTIVE", nil, nil, nil, now).
			RowError(0, errors.New("row broken")))

	_, err := repo.ListByOwner(context.Background(), "owner-1")
	require.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	revokedAt := time.Now().UTC()
	q := `(?s)UPDATE\s+api_keys\s+SET\s+status\s*=\s*\$2,\s*revoked_at\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+status\s*=\s*'ACTIVE'`

	tests := []struct {
		name    string
		rows    int64
		execErr error
		wantErr error
	}{
		{name: "revoked", rows: 1},
		{name: "already revoked", rows: 0, wantErr: common.ErrorStatusConflict},
		{name: "db error", execErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			exp := mock.ExpectExec(q).WithArgs("k1", "REVOKED", revokedAt)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rows))
			}

			err := repo.UpdateStatus(context.Background(), "k1", models.StatusRevoked, revokedAt)
			switch {
			case tt.execErr != nil:
				require.Error(t, err)
				assert.Regexp(t, `update key status: .*db down`, err.Error())
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStatus_RejectsReactivation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	err := repo.UpdateStatus(context.Background(), "k1", models.StatusActive, time.Now())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet(), "no SQL must be issued")
}

func TestTouchLastUsed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now().UTC()
	mock.ExpectExec(`(?s)UPDATE\s+api_keys\s+SET\s+last_used_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+status\s*=\s*'ACTIVE'`).
		WithArgs("k1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE\s+api_keys`).
		WithArgs("k2", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.TouchLastUsed(context.Background(), "k1", at))
	assert.ErrorIs(t, repo.TouchLastUsed(context.Background(), "k2", at), common.ErrorStatusConflict)
}
