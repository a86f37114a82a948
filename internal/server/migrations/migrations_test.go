package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"00001_create_api_keys.sql", "00002_create_audit_events.sql"}, names)

	for _, n := range names {
		b, err := fs.ReadFile(Migrations, n)
		require.NoError(t, err)
		body := string(b)
		assert.True(t, strings.HasPrefix(body, "-- +goose Up"), n)
		assert.Contains(t, body, "-- +goose Down", n)
		assert.Equal(t, strings.Count(body, "StatementBegin"), strings.Count(body, "StatementEnd"), n)
	}
}
