package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/api"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/loghandler"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/powerup"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/sessions"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/storage"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ws"
)

func main() {
	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stdout, slog.LevelInfo)))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; using environment variables", "tag", "main")
	}

	cfg := config.Load()
	slog.Info("configuration loaded", "tag", "main",
		"wsPort", cfg.WSPort, "blitzTimeSec", cfg.BlitzTimeSec, "levelTimeSec", cfg.LevelTimeSec,
		"autoSubmitDelayMS", cfg.AutoSubmitDelayMS, "inventoryCapacity", cfg.InventoryCapacity)

	// Set up power-up registry
	registry := powerup.NewRegistry()
	powerup.RegisterAll(registry, &cfg.PowerUps)

	// Set up persistence (optional; leaderboard and telemetry)
	ctx := context.Background()
	store, err := storage.NewStore(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		slog.Error("storage unavailable; continuing without persistence", "tag", "main", "err", err)
	} else if store == nil {
		slog.Info("DATABASE_URL is not set; results will not be persisted", "tag", "main")
	}
	defer store.Close()

	// Set up session manager and WebSocket hub
	manager := sessions.NewManager(cfg, registry, store, game.AlwaysGrant{})
	hub := ws.NewHub(cfg, manager)
	go hub.Run(ctx)

	apiHandler := api.NewHandler(cfg, store, manager)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/api/leaderboard", apiHandler.Leaderboard)
	mux.HandleFunc("/api/highscore", apiHandler.HighScore)
	mux.HandleFunc("/api/stats", apiHandler.Stats)
	mux.HandleFunc("/api/health", apiHandler.Health)

	addr := fmt.Sprintf(":%d", cfg.WSPort)
	slog.Info("Poker Shootout server listening", "tag", "main", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server stopped", "tag", "main", "err", err)
		os.Exit(1)
	}
}
