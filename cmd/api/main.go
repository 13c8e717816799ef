package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mgupta-labs/khata/internal/auth"
	"github.com/mgupta-labs/khata/internal/config"
	"github.com/mgupta-labs/khata/internal/database"
	khataHttp "github.com/mgupta-labs/khata/internal/http"
	authHandler "github.com/mgupta-labs/khata/internal/http/auth"
	inventoryHandler "github.com/mgupta-labs/khata/internal/http/inventory"
	ledgerHandler "github.com/mgupta-labs/khata/internal/http/ledger"
	partyHandler "github.com/mgupta-labs/khata/internal/http/party"
	reportHandler "github.com/mgupta-labs/khata/internal/http/report"
	"github.com/mgupta-labs/khata/internal/inventory"
	inventoryStore "github.com/mgupta-labs/khata/internal/inventory/store"
	"github.com/mgupta-labs/khata/internal/ledger"
	ledgerStore "github.com/mgupta-labs/khata/internal/ledger/store"
	"github.com/mgupta-labs/khata/internal/party"
	partyStore "github.com/mgupta-labs/khata/internal/party/store"
	"github.com/mgupta-labs/khata/internal/report"
	reportStore "github.com/mgupta-labs/khata/internal/report/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		authService      = auth.NewService(cfg.Auth.Secret, cfg.Auth.AdminUser, cfg.Auth.AdminPasswordHash, cfg.Auth.TokenTTL)
		partyService     = party.NewService(partyStore.New(db))
		ledgerService    = ledger.NewService(ledgerStore.New(db))
		inventoryService = inventory.NewService(inventoryStore.New(db))
		reportService    = report.NewService(reportStore.New(db))
	)

	var (
		authH      = authHandler.NewHandler(authService)
		partiesH   = partyHandler.NewHandler(partyService, ledgerService)
		ledgerH    = ledgerHandler.NewHandler(ledgerService)
		materialsH = inventoryHandler.NewHandler(inventoryService)
		dashboardH = reportHandler.NewHandler(reportService, ledgerService, inventoryService)
		healthH    = khataHttp.NewHealthHandler(db)
	)

	router := khataHttp.New(
		authService,
		authH,
		partiesH,
		ledgerH,
		materialsH,
		dashboardH,
		healthH,
		cfg.Server.AllowedOrigins,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
