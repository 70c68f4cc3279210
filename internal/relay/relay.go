package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/logger"
	natsprovider "github.com/crosslot/auction-house/internal/providers/jetstream"
	"github.com/crosslot/auction-house/internal/reconciler"
)

// Config holds the configuration for the inbound bid relay
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	WorkerPoolSize int
	// LocalChain selects the subject this relay consumes from
	LocalChain domain.Chain
}

// Relay consumes relayed bid messages and feeds them to the reconciler
type Relay interface {
	// Run starts consuming messages until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the relay and cleans up resources
	Close()
}

type relay struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	reconciler reconciler.Reconciler
	json       adapter.JSON
	pool       pond.Pool
	config     Config
}

// NewRelay creates a new inbound bid relay
func NewRelay(
	cfg Config,
	natsJS adapter.NatsJetStream,
	rec reconciler.Reconciler,
	jsonAdapter adapter.JSON,
) (Relay, error) {
	opts := natsprovider.ConnectOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	poolSize := cfg.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = 8
	}

	return &relay{
		nc:         nc,
		js:         js,
		reconciler: rec,
		json:       jsonAdapter,
		pool:       pond.NewPool(poolSize, pond.WithQueueSize(poolSize*16)),
		config:     cfg,
	}, nil
}

// Run starts the relay consumer
func (r *relay) Run(ctx context.Context) error {
	subject := natsprovider.BidSubject(r.config.LocalChain)
	logger.Info("Starting bid relay",
		zap.String("stream", r.config.StreamName),
		zap.String("consumer", r.config.ConsumerName),
		zap.String("subject", subject))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       r.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       r.config.AckWaitTimeout,
		MaxDeliver:    r.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := r.js.CreateOrUpdateConsumer(ctx, r.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming bid messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down bid relay")
			r.pool.StopAndWait()
			return ctx.Err()
		case msg := <-msgChan:
			r.pool.Submit(func() {
				r.handleMessage(ctx, msg)
			})
		}
	}
}

// handleMessage processes a single delivered bid message
func (r *relay) handleMessage(ctx context.Context, msg adapter.Message) {
	var bid domain.BidMessage
	if err := r.json.Unmarshal(msg.Data(), &bid); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal bid message"))
		// unparseable payloads would fail every redelivery
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.Info("Received bid message",
		zap.String("message_id", bid.MessageID),
		zap.String("auction_id", bid.AuctionID),
		zap.String("source_chain", string(bid.SourceChain)))

	if err := r.reconciler.Receive(ctx, &bid); err != nil {
		if reconciler.Terminal(err) {
			logger.Error(err, zap.String("message_id", bid.MessageID))
			if err := msg.Term(); err != nil {
				logger.Error(err, zap.String("message", "Failed to terminate message"))
			}
			return
		}
		logger.Error(err, zap.String("message_id", bid.MessageID))
		// NAK to retry transient failures
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the relay and cleans up resources
func (r *relay) Close() {
	if r.nc == nil {
		return
	}

	r.nc.Close()
}
