// Copyright 2025 Irohad Authors

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/irohad/irohad-core/pkg/block"
	"github.com/irohad/irohad-core/pkg/config"
	"github.com/irohad/irohad-core/pkg/crypto"
	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/kura"
	"github.com/irohad/irohad-core/pkg/kvdb"
	"github.com/irohad/irohad-core/pkg/telemetry"
	"github.com/irohad/irohad-core/pkg/wsv"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the node's YAML configuration file")
		showHelp   = flag.Bool("help", false, "show this help message")
	)
	flag.Parse()

	if *showHelp {
		flag.Usage()
		return
	}

	cfg := loadConfig(*configPath)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("irohad: invalid configuration: %v", err)
	}

	tel := telemetry.New(levelOption(cfg.Monitoring.Logging.Level), formatOption(cfg.Monitoring.Logging.Format))
	tel.Log.WithField("kura_mode", cfg.Kura.Mode).Info("irohad: starting node")

	index, err := kvdb.Open("kura-index", cfg.Kura.BlockStorePath, dbm.GoLevelDBBackend)
	if err != nil {
		tel.Log.WithError(err).Fatal("irohad: failed to open kura index")
	}
	defer index.Close()

	store, err := kura.NewBlockStore(cfg.Kura.BlockStorePath)
	if err != nil {
		tel.Log.WithError(err).Fatal("irohad: failed to open block store")
	}

	mode := kura.ModeStrict
	if cfg.Kura.Mode == "fast" {
		mode = kura.ModeFast
	}
	k := kura.New(mode, store, index, tel)
	if err := k.Init(); err != nil {
		tel.Log.WithError(err).Fatal("irohad: kura init failed")
	}

	if _, ok := k.Height(); !ok {
		if err := commitGenesis(k, cfg, tel); err != nil {
			tel.Log.WithError(err).Fatal("irohad: failed to commit genesis block")
		}
	}

	height, _ := k.Height()
	tel.Log.WithFields(logrus.Fields{"height": height, "root": k.Root().String()}).Info("irohad: node ready")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		tel.Log.Info("irohad: shutdown signal received")
	case <-ctx.Done():
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.LoadFromEnv()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("irohad: failed to load configuration from %s: %v", path, err)
	}
	return cfg
}

func levelOption(level string) telemetry.Option {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	return telemetry.WithLevel(parsed)
}

func formatOption(format string) telemetry.Option {
	if format == "text" {
		return telemetry.WithTextFormat()
	}
	return telemetry.WithJSONFormat()
}

// commitGenesis builds and stores an empty genesis block signed by the
// peer's own key, establishing height 0 for a fresh deployment.
func commitGenesis(k *kura.Kura, cfg *config.Config, tel *telemetry.Telemetry) error {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generate genesis key pair: %w", err)
	}

	chained := block.NewPendingBlock(nil).ChainFirst(uint64(time.Now().UnixMilli()))
	signed, err := chained.Sign(kp)
	if err != nil {
		return fmt.Errorf("sign genesis block: %w", err)
	}

	peer := domain.NewPeer(domain.PeerID{Address: cfg.Torii.URL, PublicKey: kp.PublicKey})
	valid, err := signed.Validate(wsv.New(peer), tel)
	if err != nil {
		return fmt.Errorf("validate genesis block: %w", err)
	}

	if _, err := k.Store(valid); err != nil {
		return fmt.Errorf("store genesis block: %w", err)
	}
	tel.Log.Info("irohad: genesis block committed")
	return nil
}
