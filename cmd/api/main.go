package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylehub/internal/catalog"
	"stylehub/internal/checkout"
	"stylehub/internal/config"
	"stylehub/internal/database"
	"stylehub/internal/handler"
	"stylehub/internal/payment"
	"stylehub/internal/repository"
	"stylehub/internal/router"
	"stylehub/internal/service"
	"stylehub/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting stylehub API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the review store: PostgreSQL when enabled, otherwise an
	// in-process store.
	var reviewRepo repository.ReviewRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()
		reviewRepo = repository.NewReviewRepository(pool, logger)
	} else {
		logger.Info().Msg("database disabled, keeping reviews in memory")
		reviewRepo = repository.NewMemoryReviewRepository(nil)
	}

	// Initialize the session store: Redis when enabled, otherwise an
	// in-process store.
	var sessionStore session.Store
	if cfg.Redis.Enabled {
		sessionStore, err = session.NewRedisStore(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
	} else {
		logger.Info().Msg("redis disabled, keeping sessions in memory")
		sessionStore = session.NewMemoryStore()
	}

	// Initialize catalogue loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	}
	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	products, err := loader.Load(ctx, cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load product catalogue: %w", err)
	}
	cat := catalog.New(products)
	logger.Info().Int("products", cat.Size()).Msg("product catalogue loaded")

	// Initialize payment components
	stripeClient := payment.NewClient(cfg.Stripe, logger)
	webhookProcessor := payment.NewWebhookProcessor(logger)

	// Initialize payment drivers
	delays := checkout.DefaultDelays()
	upiDriver := checkout.NewUPIDriver(cfg.UPI, delays.UPI, logger)
	codDriver := checkout.NewCODDriver(delays.COD, logger)
	cardDriver := checkout.NewCardDriver(stripeClient, delays.Card, logger)

	// Initialize services
	productService := service.NewProductService(cat, logger)
	reviewService := service.NewReviewService(reviewRepo, productService, logger)
	cartService := service.NewCartService(sessionStore, productService, logger)
	checkoutService := checkout.NewService(sessionStore, upiDriver, []checkout.Driver{codDriver, cardDriver}, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	paymentHandler := handler.NewPaymentHandler(stripeClient, webhookProcessor, cfg.Stripe, logger)

	// Initialize router
	mux := router.New(productHandler, reviewHandler, cartHandler, checkoutHandler, paymentHandler, logger)

	// Create HTTP server. The write timeout leaves headroom for the
	// slowest payment driver confirmation.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
