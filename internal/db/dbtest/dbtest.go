// Package dbtest поднимает in-memory SQLite со схемой портфолио для тестов SQL-слоя.
package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ignatzorin/genesehub/internal/db"
)

// Open возвращает in-memory базу с применёнными миграциями. База живёт до конца теста.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("dbtest: open sqlite: %v", err)
	}
	// У каждого соединения своя in-memory база, поэтому держим ровно одно.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.RunMigrations(context.Background(), conn, db.Migrations()); err != nil {
		t.Fatalf("dbtest: migrations: %v", err)
	}

	return conn
}

// Exec выполняет вспомогательный SQL для подготовки данных.
func Exec(t testing.TB, conn *sqlx.DB, query string, args ...any) {
	t.Helper()
	if _, err := conn.Exec(conn.Rebind(query), args...); err != nil {
		t.Fatalf("dbtest: exec %q: %v", query, err)
	}
}
