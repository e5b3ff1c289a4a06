package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/cli"
	"github.com/attune-cli/attune/internal/db"
	"github.com/attune-cli/attune/internal/repository"
	"github.com/attune-cli/attune/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.attune/attune.db
	dbPath := os.Getenv("ATTUNE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".attune", "attune.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Build the catalog: built-ins plus an optional user directory.
	cat, err := catalog.Load(os.Getenv("ATTUNE_CATALOG"))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	overrideRepo := repository.NewSQLiteProfileOverrideRepo(database)
	nudgeRepo := repository.NewSQLiteNudgeLogRepo(database)
	interactionRepo := repository.NewSQLiteInteractionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging to stderr, opt-in.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ATTUNE_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Nudges:       service.NewNudgeService(cat, overrideRepo, nudgeRepo, interactionRepo, observer),
		Interactions: service.NewInteractionService(interactionRepo, uow, observer),
		Profiles:     service.NewProfileService(cat, overrideRepo, observer),
		Insights:     service.NewInsightsService(interactionRepo),
		Catalog:      cat,
		IsTTY:        isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
