// Command seeder loads poets, tags and timeline periods from a YAML dataset.
// Rows whose slug already exists are skipped, so the command can be re-run.
//
// Flags:
//
//	--data           path to the dataset YAML (overrides SEEDER_DATA_PATH)
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse and compare without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sindhipoetry/backend/internal/adapter/postgres"
	"github.com/sindhipoetry/backend/internal/adapter/postgres/poet"
	"github.com/sindhipoetry/backend/internal/adapter/postgres/tag"
	"github.com/sindhipoetry/backend/internal/adapter/postgres/timeline"
	"github.com/sindhipoetry/backend/internal/app"
	"github.com/sindhipoetry/backend/internal/app/seeder"
	"github.com/sindhipoetry/backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.PoetRepo     = (*poet.Repo)(nil)
	_ seeder.TagRepo      = (*tag.Repo)(nil)
	_ seeder.TimelineRepo = (*timeline.Repo)(nil)
)

func main() {
	dataFlag := flag.String("data", "", "path to the dataset YAML")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and compare without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *dataFlag != "" {
		seederCfg.DataPath = *dataFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
	}

	data, err := seeder.LoadDataset(seederCfg.DataPath)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repos := seeder.Repos{
		Poets:    poet.New(pool),
		Tags:     tag.New(pool),
		Timeline: timeline.New(pool),
	}

	pipeline := seeder.NewPipeline(logger, repos, data, seederCfg.DryRun)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
