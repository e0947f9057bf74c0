package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ignatzorin/genesehub/internal/auth"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	secret := strings.Repeat("s", 32)

	out, err := run(t, NewRootCommand(), "token", "--user", "user-1", "--secret", secret, "--ttl", "1h")
	require.NoError(t, err)

	userID, err := auth.NewTokenManager(secret, time.Hour).Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenCommand_RequiresUser(t *testing.T) {
	_, err := run(t, NewRootCommand(), "token", "--secret", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user")
}

func TestTokenCommand_RequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := run(t, NewRootCommand(), "token", "--user", "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestMigrateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	var gotDSN string
	open := func(_ context.Context, dsn string) (*sqlx.DB, error) {
		gotDSN = dsn
		return sqlx.Open("sqlite", path)
	}

	for i := 0; i < 2; i++ {
		out, err := run(t, newMigrateCommand(open), "--database-url", "postgres://example")
		require.NoError(t, err)
		assert.Contains(t, out, "migrations applied")
	}
	assert.Equal(t, "postgres://example", gotDSN)

	conn, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var tables []string
	require.NoError(t, conn.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`))
	assert.Subset(t, tables, []string{"Links_Sociais", "Perfis", "Projetos", "schema_migrations"})
}

func TestMigrateCommand_RequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cmd := newMigrateCommand(func(context.Context, string) (*sqlx.DB, error) {
		t.Fatal("opener must not be called")
		return nil, nil
	})
	_, err := run(t, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
