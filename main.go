package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autobid-server/internal/auth"
	"autobid-server/internal/bidding"
	"autobid-server/internal/catalog"
	"autobid-server/internal/config"
	"autobid-server/internal/repository"
	"autobid-server/internal/server"
	"autobid-server/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repository.NewStore(connectCtx, cfg.DatabaseURI(), cfg.DBName)
	cancelConnect()
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}

	sessions := auth.NewSessionManager(cfg.AccessTokenSecret)
	catalogService := catalog.NewCatalogService(store.Cars())
	biddingService := bidding.NewBiddingService(store.Bids(), store.Cars())

	router := server.SetupRouter(catalogService, biddingService, sessions, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	if err := store.Close(shutdownCtx); err != nil {
		utils.Error("database disconnect failed", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}
