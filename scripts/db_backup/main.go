package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/garnizeh/trivia/internal/config"
	"github.com/garnizeh/trivia/internal/db"
)

func main() {
	dst := flag.String("out", "", "Backup file to create (default: <database_path>.<timestamp>.bak)")
	flag.Parse()

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *dst == "" {
		*dst = fmt.Sprintf("%s.%s.bak", cfg.DatabasePath, time.Now().UTC().Format("20060102T150405Z"))
	}

	ctx := context.Background()
	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	// VACUUM INTO reads a consistent snapshot, so the server may keep running.
	if err := database.Backup(ctx, *dst); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database backup written to %s.\n", *dst)
}
