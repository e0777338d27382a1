package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acortes/studytrack/internal/config"
	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/acortes/studytrack/internal/domain/risk"
	"github.com/acortes/studytrack/internal/session"
	"github.com/acortes/studytrack/internal/sqlite"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "studytrack",
		Short:         "Personal notes and assignment deadline tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")

	rootCmd.AddCommand(noteCmd())
	rootCmd.AddCommand(assignmentCmd())
	rootCmd.AddCommand(assessCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openSession bootstraps config, logging, storage, and services for one
// command invocation. Invalid configuration aborts before anything opens.
func openSession() (*session.Session, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	scorer, err := risk.NewWeightedScorer(cfg.Risk.HorizonHours, risk.Weights{
		Urgency:  cfg.Risk.Weights.Urgency,
		Workload: cfg.Risk.Weights.Workload,
		Priority: cfg.Risk.Weights.Priority,
	})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("config error: %w", err)
	}

	noteSvc := note.NewService(sqlite.NewNoteRepository(db), nil, logger)
	assignmentSvc := assignment.NewService(sqlite.NewAssignmentRepository(db), nil, logger)

	sess := session.New(cfg, logger, noteSvc, assignmentSvc, scorer)
	return sess, func() { db.Close() }, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
