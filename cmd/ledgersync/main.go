package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"ledger-sync/internal/gateway"
	"ledger-sync/internal/mapper"
	"ledger-sync/internal/platform/logger"
	"ledger-sync/internal/recon"
	"ledger-sync/internal/usecase"
)

func main() {
	feedFile := flag.String("feed", "", "Path to the feed transactions JSON file (required)")
	ledgerFile := flag.String("ledger", "", "Path to the ledger snapshot JSON file (required)")
	configFile := flag.String("config", "configs/config.yaml", "Path to the yaml configuration file")
	flag.Parse()

	if *feedFile == "" || *ledgerFile == "" {
		fmt.Println("Error: flags -feed and -ledger are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := gateway.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Mode)
	defer appLogger.Sync()

	// Wire the application manually, outermost layer first.
	feedRepo := gateway.NewFeedReader()
	ledgerRepo := gateway.NewLedgerReader()
	recordMapper := mapper.New(cfg.Accounts, appLogger)

	engineOpts := []recon.Option{recon.WithLogger(appLogger)}
	if cfg.LegacyFallback {
		engineOpts = append(engineOpts, recon.WithLegacyFallback())
	}

	syncUseCase := usecase.NewSyncUseCase(feedRepo, ledgerRepo, recordMapper, appLogger, engineOpts...)

	report, err := syncUseCase.Sync(context.Background(), *feedFile, *ledgerFile)
	if err != nil {
		appLogger.Fatal("Sync failed", zap.Error(err))
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		appLogger.Fatal("Failed to generate JSON report", zap.Error(err))
	}

	fmt.Println(string(output))
}
