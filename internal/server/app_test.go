package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/server/config"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/inmemory"
	"github.com/dmitrijs2005/keykeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = inmemory.DSN
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

type migrateFailManager struct {
	*inmemory.Manager
	closed bool
}

func (m *migrateFailManager) RunMigrations(context.Context) error { return errors.New("bad migration") }
func (m *migrateFailManager) Close() error {
	m.closed = true
	return nil
}

func stubPostgres(t *testing.T, fn func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error)) {
	t.Helper()
	orig := openPostgres
	openPostgres = fn
	t.Cleanup(func() { openPostgres = orig })
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	assert.IsType(t, &inmemory.Manager{}, app.repomanager)
	assert.NotNil(t, app.keyService)
	assert.NotNil(t, app.archiveService)
}

func TestNewApp_PostgresOpenError(t *testing.T) {
	stubPostgres(t, func(context.Context, string) (repomanager.RepositoryManager, error) {
		return nil, errors.New("connection refused")
	})
	c := testConfig()
	c.DatabaseDSN = "postgres://nowhere"

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_MigrationErrorClosesStore(t *testing.T) {
	m := &migrateFailManager{Manager: inmemory.New()}
	stubPostgres(t, func(_ context.Context, dsn string) (repomanager.RepositoryManager, error) {
		assert.Equal(t, "postgres://db", dsn)
		return m, nil
	})
	c := testConfig()
	c.DatabaseDSN = "postgres://db"

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db migration error")
	assert.True(t, m.closed)
}

func TestNewApp_BadHashCost(t *testing.T) {
	c := testConfig()
	c.HashCost = 99

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestRun_StopsWhenServerFails(t *testing.T) {
	c := testConfig()
	c.EndpointAddrGRPC = "256.0.0.1:bad"
	c.MetricsAddr = ""
	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop")
	}
}
