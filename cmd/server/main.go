package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"gotokenbridge/bridge"
	"gotokenbridge/config"
	"gotokenbridge/registry"
	"gotokenbridge/store"
	"gotokenbridge/watcher"
	"gotokenbridge/workers"
	"gotokenbridge/workers/handlers"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("bridge service exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	logger.Info("starting token bridge service")

	config.Init()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddr := net.JoinHostPort(config.Config.Server.RedisHost,
		strconv.Itoa(config.Config.Server.RedisPort))
	st := store.NewRedisStore(redisAddr, store.NopNotifier{}, logger)
	defer st.Close()

	chains, err := registry.New(ctx, config.Chains, logger)
	if err != nil {
		return fmt.Errorf("chain registry: %w", err)
	}
	defer chains.Close()
	for _, chainID := range chains.ChainIDs() {
		if err := chains.BindSigner(chainID, config.Config.EVM.OperatorPrivateKey); err != nil {
			return fmt.Errorf("bind operator key for chain %d: %w", chainID, err)
		}
		addr, err := chains.SignerAddress(chainID)
		if err != nil {
			return err
		}
		if want := config.Config.EVM.OperatorAddress; want != "" && !strings.EqualFold(addr.Hex(), want) {
			return fmt.Errorf("operator key derives %s, config says %s", addr.Hex(), want)
		}
	}

	relayer, err := bridge.NewRelayer(chains, logger)
	if err != nil {
		return err
	}
	orch := bridge.NewOrchestrator(st, chains, relayer, bridge.RateTable(config.ConversionRates), logger)

	// one watch loop per chain, the recovery sweep, and the HTTP server
	// as the main thread
	watchErrs := make(chan error, len(config.Chains))
	for chainID, chainCfg := range config.Chains {
		w := watcher.New(chainCfg, nil, st, logger)
		go func(chainID int64) {
			err := workers.Worker_Watch(ctx, w, orch, st, logger)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("chain watch terminated",
					zap.Int64("chain", chainID), zap.Error(err))
				watchErrs <- err
			}
		}(chainID)
	}

	go orch.RunRecovery(ctx)

	httpErr := make(chan error, 1)
	go func() { httpErr <- workers.Worker_HTTP(ctx, &handlers.Handler{
		Store:        st,
		Chains:       chains,
		Orchestrator: orch,
		Rates:        bridge.RateTable(config.ConversionRates),
		Logger:       logger,
	}, logger) }()

	select {
	case <-ctx.Done():
		return <-httpErr
	case err := <-watchErrs:
		stop()
		<-httpErr
		return err
	case err := <-httpErr:
		return err
	}
}
