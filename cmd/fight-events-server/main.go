package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/amehta/fight-events/internal/config"
	"github.com/amehta/fight-events/internal/logger"
	"github.com/amehta/fight-events/internal/orgs"
	"github.com/amehta/fight-events/internal/scraper"
	"github.com/amehta/fight-events/internal/server"
	"github.com/amehta/fight-events/internal/storage"
)

var (
	configPath = flag.String("config", os.Getenv("FIGHT_EVENTS_CONFIG"), "Path to YAML config file (or env: FIGHT_EVENTS_CONFIG)")
	addr       = flag.String("addr", "", "Listen address (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()
	flag.Parse()

	if *verbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", logger.Fields{"path": *configPath}, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	sc, err := scraper.New(cfg)
	if err != nil {
		logger.Error("initializing scraper", nil, err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		logger.Error("initializing storage", logger.Fields{"dir": cfg.Storage.DataDir}, err)
		os.Exit(1)
	}

	aliases := orgs.Default()
	for code, variants := range cfg.Orgs {
		aliases[code] = variants
	}

	srv, err := server.New(sc, store, aliases)
	if err != nil {
		logger.Error("initializing server", nil, err)
		os.Exit(1)
	}

	logger.Info("listening", logger.Fields{"addr": cfg.Server.Addr})
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Handler()); err != nil {
		logger.Error("server stopped", nil, err)
		os.Exit(1)
	}
}
