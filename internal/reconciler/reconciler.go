package reconciler

import (
	"context"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/messaging"
	"github.com/crosslot/auction-house/internal/store"
)

// Config holds the reconciler configuration
type Config struct {
	// LocalChain is the CAIP-2 id of the chain this service settles on
	LocalChain domain.Chain
	// SenderID identifies this service in outbound messages
	SenderID string
	// RelayFeeUSD is collected from the bidder before an outbound bid is sent
	RelayFeeUSD decimal.Decimal
	// RelayFeeToken is the token the relay fee is collected in, empty for native
	RelayFeeToken string
}

// Reconciler converges the relayed bid stream with the local ledger. Inbound
// messages pass the allowlist gates, are deduplicated by message id, and only
// then reach the auction engine. Outbound bids are gated, charged a relay fee
// and recorded before publishing.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// Receive applies one delivered bid message. Redeliveries of an applied
	// message id return nil without touching the ledger.
	Receive(ctx context.Context, msg *domain.BidMessage) error
	// SendBid relays a bid from this chain to an auction hosted elsewhere
	SendBid(ctx context.Context, bid domain.OutboundBid) (*domain.OutboundMessage, error)
}

type reconciler struct {
	config    Config
	store     store.Store
	factory   auction.Factory
	publisher messaging.Publisher
	vault     escrow.TokenVault
	clock     adapter.Clock
}

// NewReconciler creates a new reconciler
func NewReconciler(
	cfg Config,
	st store.Store,
	factory auction.Factory,
	publisher messaging.Publisher,
	vault escrow.TokenVault,
	clock adapter.Clock,
) Reconciler {
	return &reconciler{
		config:    cfg,
		store:     st,
		factory:   factory,
		publisher: publisher,
		vault:     vault,
		clock:     clock,
	}
}

func (r *reconciler) Receive(ctx context.Context, msg *domain.BidMessage) error {
	if msg == nil || !msg.Valid() {
		return domain.ErrInvalidMessage
	}

	// authorization gates run before any ledger access so an unauthorized
	// message can never leave a trace
	allowed, err := r.store.IsAllowed(ctx, domain.AllowSourceChain, string(msg.SourceChain))
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("source chain %s: %w", msg.SourceChain, domain.ErrUnauthorizedSourceChain)
	}

	allowed, err = r.store.IsAllowed(ctx, domain.AllowSender, msg.Sender)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("sender %s: %w", msg.Sender, domain.ErrUnauthorizedSender)
	}

	// at-least-once delivery, a message id already applied is dropped quietly
	seen, err := r.store.HasCrossChainBid(ctx, msg.MessageID)
	if err != nil {
		return err
	}
	if seen {
		logger.DebugCtx(ctx, "duplicate bid message ignored",
			zap.String("message_id", msg.MessageID),
			zap.String("auction_id", msg.AuctionID))
		return nil
	}

	eng, err := r.factory.Engine(msg.AuctionID)
	if err != nil {
		return fmt.Errorf("auction %s: %w", msg.AuctionID, err)
	}

	admitted, err := eng.SubmitCrossChainBid(ctx, msg)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "bid message reconciled",
		zap.String("message_id", msg.MessageID),
		zap.String("auction_id", msg.AuctionID),
		zap.Bool("admitted", admitted))
	return nil
}

func (r *reconciler) SendBid(ctx context.Context, bid domain.OutboundBid) (*domain.OutboundMessage, error) {
	if !bid.AmountUSD.IsPositive() {
		return nil, domain.ErrBidTooLow
	}
	if bid.AuctionID == "" || bid.Bidder == "" {
		return nil, errors.New("auction id and bidder are required")
	}

	allowed, err := r.store.IsAllowed(ctx, domain.AllowDestinationChain, string(bid.DestinationChain))
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("destination chain %s: %w", bid.DestinationChain, domain.ErrUnauthorizedDestinationChain)
	}

	// the sender gate runs before the fee is collected, a revoked sender
	// must not charge the bidder for a message that cannot go out
	allowed, err = r.store.IsAllowed(ctx, domain.AllowSender, r.config.SenderID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("sender %s: %w", r.config.SenderID, domain.ErrUnauthorizedSender)
	}

	bidder := domain.NormalizeAddress(bid.Bidder)
	if r.config.RelayFeeUSD.IsPositive() {
		if err := r.vault.Pull(ctx, r.config.RelayFeeToken, bidder, r.config.RelayFeeUSD); err != nil {
			return nil, err
		}
	}

	now := r.clock.Now()
	msg := &domain.BidMessage{
		MessageID:   ulid.MustNewDefault(now).String(),
		AuctionID:   bid.AuctionID,
		Bidder:      bidder,
		AmountUSD:   bid.AmountUSD,
		SourceChain: r.config.LocalChain,
		Sender:      r.config.SenderID,
		SentAt:      now,
	}

	if err := r.publisher.PublishBid(ctx, bid.DestinationChain, msg); err != nil {
		return nil, err
	}

	record := &domain.OutboundMessage{
		MessageID:          msg.MessageID,
		DestinationChain:   bid.DestinationChain,
		DestinationAdapter: bid.DestinationAdapter,
		AuctionID:          bid.AuctionID,
		Bidder:             bidder,
		AmountUSD:          bid.AmountUSD,
		FeePaid:            r.config.RelayFeeUSD,
		SentAt:             now,
	}
	if err := r.store.RecordOutboundMessage(ctx, record); err != nil {
		// the message is already on the wire, keep going but surface the gap
		logger.ErrorCtx(ctx, err, zap.String("message_id", msg.MessageID))
	}

	logger.InfoCtx(ctx, "bid relayed",
		zap.String("message_id", msg.MessageID),
		zap.String("auction_id", bid.AuctionID),
		zap.String("destination_chain", string(bid.DestinationChain)),
		zap.String("usd", bid.AmountUSD.String()))

	return record, nil
}

// Terminal reports whether a Receive error is permanent. Permanent failures
// must not be redelivered, the message would fail the same way every time.
func Terminal(err error) bool {
	return errors.Is(err, domain.ErrInvalidMessage) ||
		errors.Is(err, domain.ErrUnauthorizedSourceChain) ||
		errors.Is(err, domain.ErrUnauthorizedSender) ||
		errors.Is(err, domain.ErrAuctionNotFound)
}
