package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nurpe/rental-contracts/internal/auth"
	"github.com/nurpe/rental-contracts/internal/config"
	"github.com/nurpe/rental-contracts/internal/db"
	"github.com/nurpe/rental-contracts/internal/excel"
	httphandler "github.com/nurpe/rental-contracts/internal/http"
	"github.com/nurpe/rental-contracts/internal/http/middleware"
	"github.com/nurpe/rental-contracts/internal/job"
	"github.com/nurpe/rental-contracts/internal/logger"
	"github.com/nurpe/rental-contracts/internal/pdf"
	"github.com/nurpe/rental-contracts/internal/repository"
	"github.com/nurpe/rental-contracts/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	directoryRepo := repository.NewDirectoryRepository(database)

	contractService := service.NewContractService(
		contractRepo,
		paymentRepo,
		directoryRepo,
		pdf.NewGenerator(),
		excel.NewGenerator(),
		cfg,
	)
	ledgerService := service.NewLedgerService(paymentRepo, contractRepo, directoryRepo)

	var expiryJob *job.ExpiryJob
	if cfg.Contracts.ExpirySchedule != "" {
		expiryJob, err = job.NewExpiryJob(cfg.Contracts.ExpirySchedule, contractService, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to schedule expiry job")
		}
		expiryJob.Start()
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, ledgerService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting rental contracts service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if expiryJob != nil {
		expiryJob.Stop(ctx)
	}
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
