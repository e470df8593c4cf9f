package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	dbfs "github.com/garnizeh/trivia/db"
	"github.com/garnizeh/trivia/internal/config"
	"github.com/garnizeh/trivia/internal/db"
	"github.com/garnizeh/trivia/internal/repository/sqlite"
)

// summary is what the database holds once initialization finished.
type summary struct {
	Categories int
	Questions  int64
}

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	noSeed := flag.Bool("no-seed", false, "Apply schema migrations only, even if seed_on_start is set")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
	defer cancel()

	sum, err := initDB(ctx, cfg.DatabasePath, cfg.SeedOnStart && !*noSeed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database %s ready: %d categories, %d questions.\n", cfg.DatabasePath, sum.Categories, sum.Questions)
}

// initDB migrates the database at dsn, loads the bundled categories and
// starter questions when seed is set, and reports the resulting row counts.
func initDB(ctx context.Context, dsn string, seed bool, logger *slog.Logger) (summary, error) {
	database, err := db.New(ctx, dsn, logger)
	if err != nil {
		return summary{}, err
	}
	defer database.Close()

	var seedFS fs.FS
	if seed {
		seedFS = dbfs.SeedFiles
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations, seedFS); err != nil {
		return summary{}, fmt.Errorf("migrate: %w", err)
	}

	repo := sqlite.New(database, logger)
	cats, err := repo.ListCategories(ctx)
	if err != nil {
		return summary{}, fmt.Errorf("list categories: %w", err)
	}
	n, err := repo.CountQuestions(ctx)
	if err != nil {
		return summary{}, err
	}
	if seed && len(cats) == 0 {
		logger.Warn("no categories after seeding; /categories will answer 404")
	}

	return summary{Categories: len(cats), Questions: n}, nil
}
