package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/reflow/internal/cli"
	"github.com/alexanderramin/reflow/internal/db"
	"github.com/alexanderramin/reflow/internal/repository"
	"github.com/alexanderramin/reflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.reflow/reflow.db
	dbPath := os.Getenv("REFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".reflow", "reflow.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	runRepo := repository.NewSQLiteRunRepo(database)

	// Use-case telemetry goes to stderr when REFLOW_LOG is set.
	var logWriter io.Writer
	if os.Getenv("REFLOW_LOG") != "" {
		logWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logWriter)

	app := &cli.App{
		Reflow:    service.NewReflowService(scenarioRepo, runRepo, observer),
		Scenarios: service.NewScenarioService(scenarioRepo, runRepo, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
