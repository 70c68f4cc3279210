package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/api/middleware"
	"github.com/crosslot/auction-house/internal/api/server"
	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/config"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/oracle"
	natsprovider "github.com/crosslot/auction-house/internal/providers/jetstream"
	"github.com/crosslot/auction-house/internal/reconciler"
	"github.com/crosslot/auction-house/internal/relay"
	"github.com/crosslot/auction-house/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to the directory holding .env files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAuctiondConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting auctiond")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Price oracle, a fixed rate short-circuits the on-chain feed
	var priceOracle oracle.PriceOracle
	if cfg.Oracle.FixedRate.IsPositive() {
		priceOracle = oracle.NewFixedOracle(cfg.Oracle.FixedRate)
		logger.Info("Using fixed-rate oracle", zap.String("rate", cfg.Oracle.FixedRate.String()))
	} else {
		ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Oracle.RPCURL)
		if err != nil {
			logger.Fatal("Failed to dial oracle RPC", zap.Error(err), zap.String("url", cfg.Oracle.RPCURL))
		}
		defer ethClient.Close()

		priceOracle, err = oracle.NewChainlinkOracle(ethClient, clock, oracle.Config{
			FeedAddress: cfg.Oracle.FeedAddress,
			StaleAfter:  cfg.Oracle.StaleAfter,
		})
		if err != nil {
			logger.Fatal("Failed to create oracle", zap.Error(err))
		}
		logger.Info("Using Chainlink oracle", zap.String("feed", cfg.Oracle.FeedAddress))
	}

	// Escrow custody, store-backed so it survives restarts and is shared
	// with the relayer
	assets := escrow.NewPGAssetRegistry(db)
	vault := escrow.NewPGVault(db)

	// Auction engines
	factory := auction.NewFactory(dataStore, clock, priceOracle, assets, vault)
	if err := factory.LoadExisting(ctx); err != nil {
		logger.Fatal("Failed to load auctions", zap.Error(err))
	}
	refunds := auction.NewRefundService(dataStore, vault)

	// Outbound publisher and reconciler
	publisher, err := natsprovider.NewPublisher(natsprovider.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to create publisher", zap.Error(err))
	}
	defer publisher.Close()

	rec := reconciler.NewReconciler(reconciler.Config{
		LocalChain:    cfg.House.LocalChain,
		SenderID:      cfg.House.SenderID,
		RelayFeeUSD:   cfg.House.RelayFeeUSD,
		RelayFeeToken: cfg.House.RelayFeeToken,
	}, dataStore, factory, publisher, vault, clock)

	// Inbound bid relay
	bidRelay, err := relay.NewRelay(relay.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		AckWaitTimeout: cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
		LocalChain:     cfg.House.LocalChain,
	}, natsJS, rec, jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to create bid relay", zap.Error(err))
	}
	defer bidRelay.Close()

	// API server
	apiServer := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, factory, dataStore, rec, refunds, vault)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 2)

	go func() {
		if err := bidRelay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	go func() {
		if err := apiServer.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}

	logger.Info("auctiond stopped")
}
