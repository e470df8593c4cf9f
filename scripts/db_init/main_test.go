package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitDB_Seeded(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trivia.db")

	sum, err := initDB(ctx, path, true, quietLogger())
	if err != nil {
		t.Fatalf("initDB error: %v", err)
	}
	if sum.Categories != 6 || sum.Questions != 19 {
		t.Fatalf("unexpected summary %+v", sum)
	}

	// a second run applies nothing new
	again, err := initDB(ctx, path, true, quietLogger())
	if err != nil {
		t.Fatalf("second initDB error: %v", err)
	}
	if again != sum {
		t.Fatalf("re-run changed the data: %+v then %+v", sum, again)
	}
}

func TestInitDB_SchemaOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trivia.db")

	sum, err := initDB(context.Background(), path, false, quietLogger())
	if err != nil {
		t.Fatalf("initDB error: %v", err)
	}
	if sum != (summary{}) {
		t.Fatalf("expected empty tables, got %+v", sum)
	}
}
