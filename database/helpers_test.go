package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testClock is a settable time source for repository tests.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, time.March, 12, 9, 30, 0, 0, time.Local)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestGateway(t *testing.T, opts ...Option) *Gateway {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	gateway, err := NewGateway(dbPath, opts...)
	require.NoError(t, err)
	return gateway
}

func setupTestRepo(t *testing.T) (*Repository, *Gateway, *testClock) {
	t.Helper()

	gateway := setupTestGateway(t)
	_, err := NewMigrator(gateway, discardLogger()).Migrate(context.Background())
	require.NoError(t, err)

	clock := newTestClock()
	repo := NewRepository(NewExecutor(gateway, discardLogger()))
	repo.SetClock(clock.Now)
	return repo, gateway, clock
}

func createTestUser(t *testing.T, repo *Repository, username string) int64 {
	t.Helper()

	user, err := repo.AddUser(context.Background(), username, "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.ID
}
