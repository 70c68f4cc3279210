package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/config"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/oracle"
	natsprovider "github.com/crosslot/auction-house/internal/providers/jetstream"
	"github.com/crosslot/auction-house/internal/reconciler"
	"github.com/crosslot/auction-house/internal/store"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file")
	envPath     = flag.String("env", "", "Path to the directory holding .env files")
	destination = flag.String("destination", "", "CAIP-2 id of the chain hosting the auction")
	destAdapter = flag.String("adapter", "", "Remote endpoint the bid is addressed to")
	auctionID   = flag.String("auction", "", "Remote auction id")
	bidder      = flag.String("bidder", "", "Local bidder address")
	amountUSD   = flag.String("amount-usd", "", "Bid amount in USD")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadRelayerConfig(*configPath, *envPath)
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
	logger.Info("Starting relayer")

	amount, err := decimal.NewFromString(*amountUSD)
	if err != nil {
		logger.Fatal("Invalid bid amount", zap.String("amount", *amountUSD))
	}
	if *destination == "" || *auctionID == "" || *bidder == "" {
		logger.Fatal("destination, auction and bidder flags are required")
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

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

	vault := escrow.NewPGVault(db)

	// the relayer never opens auctions locally so the factory stays empty,
	// it exists only to satisfy the reconciler wiring
	factory := auction.NewFactory(dataStore, clock, oracle.NewFixedOracle(decimal.New(1, 0)), escrow.NewPGAssetRegistry(db), vault)

	rec := reconciler.NewReconciler(reconciler.Config{
		LocalChain:    cfg.House.LocalChain,
		SenderID:      cfg.House.SenderID,
		RelayFeeUSD:   cfg.House.RelayFeeUSD,
		RelayFeeToken: cfg.House.RelayFeeToken,
	}, dataStore, factory, publisher, vault, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	bid := domain.OutboundBid{
		DestinationChain:   domain.Chain(*destination),
		DestinationAdapter: *destAdapter,
		AuctionID:          *auctionID,
		Bidder:             *bidder,
		AmountUSD:          amount,
	}

	// transient transport failures are retried, authorization failures are not
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = time.Minute

	var record *domain.OutboundMessage
	err = backoff.Retry(func() error {
		var sendErr error
		record, sendErr = rec.SendBid(ctx, bid)
		if sendErr == nil {
			return nil
		}
		if errors.Is(sendErr, domain.ErrUnauthorizedDestinationChain) ||
			errors.Is(sendErr, domain.ErrUnauthorizedSender) ||
			errors.Is(sendErr, domain.ErrBidTooLow) ||
			errors.Is(sendErr, domain.ErrInsufficientAllowance) {
			return backoff.Permanent(sendErr)
		}
		logger.Warn("Relay attempt failed, retrying", zap.Error(sendErr))
		return sendErr
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		logger.Fatal("Failed to relay bid", zap.Error(err))
	}

	logger.Info("Bid relayed",
		zap.String("message_id", record.MessageID),
		zap.String("auction_id", record.AuctionID),
		zap.String("destination_chain", string(record.DestinationChain)),
		zap.String("usd", record.AmountUSD.String()))
}
