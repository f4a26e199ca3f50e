package main

import (
	"time"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/config"
	"plate-auction-web/internal/repository"
	"plate-auction-web/internal/server"
	"plate-auction-web/internal/session"
	"plate-auction-web/utils"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	service, err := newAuctionService(cfg, reg)
	if err != nil {
		utils.Fatal("failed to set up auction service", map[string]any{"error": err.Error()})
	}

	sessions := session.NewStore(cfg.Session.CookieName, cfg.Session.SecureCookie)

	router, err := server.SetupRouter(service, sessions, reg)
	if err != nil {
		utils.Fatal("failed to set up router", map[string]any{"error": err.Error()})
	}

	utils.Info("starting plate auction web", map[string]any{
		"addr":     cfg.Addr(),
		"backend":  cfg.Auction.Backend,
		"base_url": cfg.Auction.BaseURL,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// newAuctionService returns the remote client, or a seeded in-memory backend in memory mode
func newAuctionService(cfg *config.Config, reg prometheus.Registerer) (auction.Service, error) {
	if cfg.Auction.Backend == config.BackendMemory {
		repo := repository.NewMemoryRepo()
		prepopulatePlates(repo)
		return repo, nil
	}

	metrics, err := auction.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	return auction.NewClient(cfg.Auction.BaseURL, cfg.Auction.Timeout, auction.WithMetrics(metrics)), nil
}

// prepopulatePlates adds sample plates to the in-memory repo
func prepopulatePlates(repo *repository.MemoryRepo) {
	deadline := time.Now().UTC().Add(7 * 24 * time.Hour)
	plates := []repository.Plate{
		{ID: 1, PlateNumber: "01A777AA", Description: "Triple sevens, Tashkent region", Deadline: deadline, Active: true},
		{ID: 2, PlateNumber: "10B001BB", Description: "Single digit series", Deadline: deadline, Active: true},
		{ID: 3, PlateNumber: "30X888XX", Description: "Mirror letters", Deadline: deadline, Active: true},
	}

	for _, p := range plates {
		repo.AddPlate(p)
	}
}
