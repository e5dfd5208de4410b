package main

import (
	"flag"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/engine"
	"github.com/osmosis-labs/transmuter-engine/log"
	"github.com/osmosis-labs/transmuter-engine/store"
)

// main parses the pool seed config, builds one engine.Engine, and runs a
// scripted create-join-swap-exit sequence against it, logging each step.
// There is no network transport here: the contract-call shell this would
// sit behind is out of scope, this just proves the wiring end to end.
func main() {
	configPath := flag.String("config", "config.json", "pool seed config file location")
	flag.Parse()

	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("reading config: %w", err))
	}

	var cfg domain.EngineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("unmarshalling config: %w", err))
	}

	logger, err := log.NewLogger(cfg.Logger.IsProduction, cfg.Logger.Level)
	if err != nil {
		panic(fmt.Errorf("building logger: %w", err))
	}
	logger.Info("starting transmuterd", zap.String("config", *configPath))

	e, err := engine.New(cfg, store.NewMemStore(), logger)
	if err != nil {
		logger.Error("failed to build engine", zap.Error(err))
		return
	}
	logger.Info("pool created", zap.String("alloyed_denom", e.ShareDenom()))

	runDemoSequence(e, logger)
}

// runDemoSequence joins a deposit, swaps part of it for another pool
// asset, then exits part of the resulting shares, logging the result of
// each step. It is a demonstration, not a test: a failing step is logged
// and the sequence moves on rather than aborting the process.
func runDemoSequence(e *engine.Engine, logger log.Logger) {
	const demoUser = "demo-user"

	if len(e.PoolAssetDenoms()) < 2 {
		logger.Warn("skipping demo sequence: fewer than two pool assets configured")
		return
	}
	denomA, denomB := e.PoolAssetDenoms()[0], e.PoolAssetDenoms()[1]

	minted, err := e.JoinPool(demoUser, []engine.Coin{
		{Denom: denomA, Amount: osmomath.NewInt(1000)},
	})
	if err != nil {
		logger.Error("join failed", zap.Error(err))
	} else {
		logger.Info("joined pool", zap.String("minted_shares", minted.String()))
	}

	out, err := e.SwapExactAmountIn(demoUser, denomA, osmomath.NewInt(100), denomB, osmomath.ZeroInt())
	if err != nil {
		logger.Error("swap failed", zap.Error(err))
	} else {
		logger.Info("swapped", zap.String("denom_in", denomA), zap.String("denom_out", denomB), zap.String("amount_out", out.String()))
	}

	burned, err := e.ExitPool(demoUser, []engine.Coin{
		{Denom: denomA, Amount: osmomath.NewInt(200)},
	})
	if err != nil {
		logger.Error("exit failed", zap.Error(err))
	} else {
		logger.Info("exited pool", zap.String("burned_shares", burned.String()))
	}
}
