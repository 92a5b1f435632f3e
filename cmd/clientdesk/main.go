package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"clientdesk/internal/auth"
	"clientdesk/internal/cli"
	"clientdesk/internal/domain"
	"clientdesk/internal/iocli"
	"clientdesk/internal/notify"
	"clientdesk/internal/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", defaultEnv("CLIENTDESK_DB", "clientdesk.db"), "Path to local database")
	logLevel := flag.String("log-level", defaultEnv("CLIENTDESK_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	setupLogger(*logLevel)

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(io)
		os.Exit(1)
	}

	command := args[0]

	// Ctrl+C cancels the context so long-running commands (watch) shut
	// down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	authService := auth.NewService(boltStorage, boltStorage)
	domainService := domain.NewService(boltStorage)

	app := cli.New(io, authService, domainService, boltStorage, boltStorage, notify.NewDesktop())

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func defaultEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("ClientDesk\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
