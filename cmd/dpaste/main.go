package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Golem-Base/dPaste/internal/adapter"
	"github.com/Golem-Base/dPaste/internal/client"
	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/internal/service"
	"github.com/Golem-Base/dPaste/internal/store"
	"github.com/Golem-Base/dPaste/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// log to a file: stdout belongs to the paste text
	log := logger.NewFileLogger("dpaste")
	log.Debug().
		Str("version", buildInfo(buildVersion)).
		Str("date", buildInfo(buildDate)).
		Str("commit", buildInfo(buildCommit)).
		Msg("starting")

	overrides, cmdArgs, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	overrides.App.Version = buildInfo(buildVersion)

	cfg, err := config.GetConfig(overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chain, err := adapter.NewChainAdapter(cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create chain adapter")
	}

	ledgerStore, err := store.NewLedgerStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ledger store")
	}

	services := service.NewServices(cfg, chain, ledgerStore, log)
	poller := workers.NewReceiptPoller(services.LedgerService, chain, cfg.Chain.Account, cfg.Chain.BlockInterval, log.GetChildLogger())

	// the sweep loop resolves leftover pending submissions while a
	// foreground command runs
	background := workers.NewWorkers(poller)
	background.Start(ctx)
	defer background.Stop()

	var app client.Client = client.NewApp(cfg, services, poller, log)
	if err := app.Run(ctx, append([]string{os.Args[0]}, cmdArgs...)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildInfo(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
