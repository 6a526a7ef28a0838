package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Just-Ren/Kursovaya-DB/internal/app"
	"github.com/Just-Ren/Kursovaya-DB/internal/config"
	"github.com/Just-Ren/Kursovaya-DB/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	employerIDs, err := parseEmployerIDs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: collector <employer-id> [<employer-id>...]\n%v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := app.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	defer func() { _ = res.Close(context.Background()) }()

	report, err := res.Service.Collect(ctx, employerIDs)
	if err != nil {
		logger.Error("collection failed", "err", err)
		os.Exit(1)
	}

	for _, f := range report.Fetches {
		switch {
		case f.Err != nil:
			logger.Error("employer skipped", "employer_id", f.EmployerID, "err", f.Err)
		case f.Truncated != nil:
			logger.Warn("employer fetch truncated",
				"employer_id", f.EmployerID, "loaded", f.Loaded, "reason", f.Truncated)
		default:
			logger.Info("employer fetched",
				"employer_id", f.EmployerID, "loaded", f.Loaded, "pages", f.Pages)
		}
	}

	logger.Info("run complete",
		"run_id", report.RunID.String(),
		"stored", report.Stored,
		"exported", report.Exported,
		"took", report.FinishedAt.Sub(report.StartedAt).String(),
	)
}

func parseEmployerIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one employer id is required")
	}

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("employer id %q is not an integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
