package db_test

import (
	"context"
	"testing"
	"testing/fstest"

	dbfs "github.com/garnizeh/trivia/db"
	"github.com/garnizeh/trivia/internal/db"
)

func count(t *testing.T, d *db.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := d.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("count %q: %v", query, err)
	}
	return n
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, "file:migrate_idem?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	seededQuestions := count(t, d, `SELECT COUNT(*) FROM questions`)
	if seededQuestions == 0 {
		t.Fatalf("expected seeded questions")
	}
	if n := count(t, d, `SELECT COUNT(*) FROM categories`); n != 6 {
		t.Fatalf("expected 6 seeded categories, got %d", n)
	}

	// Run again to ensure idempotency
	if err := db.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if n := count(t, d, `SELECT COUNT(*) FROM questions`); n != seededQuestions {
		t.Fatalf("seed applied twice: %d questions, want %d", n, seededQuestions)
	}
	if n := count(t, d, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, "0001_init"); n != 1 {
		t.Fatalf("expected 0001_init recorded once, got %d", n)
	}
	if n := count(t, d, `SELECT COUNT(1) FROM schema_migrations WHERE version LIKE 'seed/%'`); n != 2 {
		t.Fatalf("expected 2 seed files recorded, got %d", n)
	}
}

func TestMigrate_DeletedSeedRowsStayDeleted(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, "file:migrate_deleted?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if _, err := d.Exec(ctx, `DELETE FROM questions WHERE id = 1`); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if n := count(t, d, `SELECT COUNT(*) FROM questions WHERE id = 1`); n != 0 {
		t.Fatalf("restart restored a deleted seed row")
	}
}

func TestMigrate_WithoutSeed(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, "file:migrate_noseed?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations, nil); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if n := count(t, d, `SELECT COUNT(*) FROM questions`); n != 0 {
		t.Fatalf("expected empty questions table, got %d", n)
	}

	// a seed FS with no seed directory is skipped as well
	if err := db.Migrate(ctx, d, dbfs.Migrations, fstest.MapFS{}); err != nil {
		t.Fatalf("migrate with empty seed fs failed: %v", err)
	}
}

func TestMigrate_BadSQL(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, "file:migrate_bad?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	bad := fstest.MapFS{
		"migrations/0001_ok.sql":  {Data: []byte(`CREATE TABLE ok (id INTEGER);`)},
		"migrations/0002_bad.sql": {Data: []byte(`CREATE TABLE (;`)},
	}
	if err := db.Migrate(ctx, d, bad, nil); err == nil {
		t.Fatalf("expected error for invalid migration")
	}
	if n := count(t, d, `SELECT COUNT(1) FROM schema_migrations WHERE version = '0001_ok'`); n != 1 {
		t.Fatalf("expected the good migration to be recorded")
	}
	if n := count(t, d, `SELECT COUNT(1) FROM schema_migrations WHERE version = '0002_bad'`); n != 0 {
		t.Fatalf("failed migration must not be recorded")
	}
}
