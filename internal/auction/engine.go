package auction

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/oracle"
	"github.com/crosslot/auction-house/internal/store"
)

// Engine owns the state of one auction. Both bid streams, local bids from the
// API and relayed bids from the reconciler, converge on the same engine so a
// single admission rule arbitrates between them.
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// Auction returns a copy of the current auction state
	Auction() domain.Auction
	// Phase derives the lifecycle phase at the current instant
	Phase() domain.Phase
	// PlaceBidNative admits a bid denominated in the native currency,
	// converting it to USD through the price oracle
	PlaceBidNative(ctx context.Context, bidder string, amount decimal.Decimal) (domain.Auction, error)
	// PlaceBidToken admits a bid paid in the auction's configured token
	PlaceBidToken(ctx context.Context, bidder string, amount decimal.Decimal) (domain.Auction, error)
	// SubmitCrossChainBid applies a relayed bid message. The bid is recorded
	// whether or not it wins; the returned flag reports admission.
	SubmitCrossChainBid(ctx context.Context, msg *domain.BidMessage) (bool, error)
	// Finalize ends the auction exactly once and settles with the winner,
	// or returns the asset to its owner when no bid was admitted
	Finalize(ctx context.Context) (domain.Auction, error)
	// ReleaseAssetToCrossChainWinner hands the escrowed asset to the address
	// the cross-chain winner claims with on this chain
	ReleaseAssetToCrossChainWinner(ctx context.Context, recipient string) error
}

type engine struct {
	mu      sync.Mutex
	auction *domain.Auction

	store  store.Store
	clock  adapter.Clock
	oracle oracle.PriceOracle
	assets escrow.AssetRegistry
	vault  escrow.TokenVault
}

// NewEngine creates an engine around an existing auction record
func NewEngine(
	auction *domain.Auction,
	st store.Store,
	clock adapter.Clock,
	priceOracle oracle.PriceOracle,
	assets escrow.AssetRegistry,
	vault escrow.TokenVault,
) Engine {
	return &engine{
		auction: auction,
		store:   st,
		clock:   clock,
		oracle:  priceOracle,
		assets:  assets,
		vault:   vault,
	}
}

func (e *engine) Auction() domain.Auction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.auction
}

func (e *engine) Phase() domain.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.auction.PhaseAt(e.clock.Now())
}

func (e *engine) PlaceBidNative(ctx context.Context, bidder string, amount decimal.Decimal) (domain.Auction, error) {
	if !amount.IsPositive() {
		return domain.Auction{}, domain.ErrBidTooLow
	}

	// price lookup happens before taking the lock, a slow feed must not
	// stall the other bid stream
	usd, err := e.oracle.ConvertNativeToUSD(ctx, amount)
	if err != nil {
		return domain.Auction{}, err
	}

	return e.placeLocalBid(ctx, bidder, domain.PaymentTokenNative, amount, usd)
}

func (e *engine) PlaceBidToken(ctx context.Context, bidder string, amount decimal.Decimal) (domain.Auction, error) {
	if !amount.IsPositive() {
		return domain.Auction{}, domain.ErrBidTooLow
	}

	e.mu.Lock()
	token := e.auction.PaymentToken
	e.mu.Unlock()
	if token == domain.PaymentTokenNative {
		return domain.Auction{}, domain.ErrTokenNotAccepted
	}

	// the configured token is a USD stablecoin, amounts convert at par
	return e.placeLocalBid(ctx, bidder, token, amount, amount.Round(domain.USD_DECIMALS))
}

func (e *engine) placeLocalBid(ctx context.Context, bidder, token string, tokenAmount, usd decimal.Decimal) (domain.Auction, error) {
	bidder = domain.NormalizeAddress(bidder)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if e.auction.PhaseAt(now) != domain.PhaseActive {
		return domain.Auction{}, domain.ErrAuctionNotActive
	}
	if usd.LessThan(e.auction.MinAcceptableUSD()) {
		return domain.Auction{}, domain.ErrBidTooLow
	}

	if err := e.vault.Pull(ctx, token, bidder, tokenAmount); err != nil {
		return domain.Auction{}, err
	}

	credit := e.displacedCredit(now)

	next := *e.auction
	next.HighestUSD = usd
	next.HighestBidder = bidder
	next.HighestPaymentToken = token
	next.HighestTokenAmount = tokenAmount
	next.WinningMessageID = ""
	next.UpdatedAt = now

	if err := e.store.SaveAdmission(ctx, &next, nil, credit); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("auction_id", e.auction.ID),
			zap.String("bidder", bidder))
		return domain.Auction{}, err
	}
	*e.auction = next

	logger.InfoCtx(ctx, "local bid admitted",
		zap.String("auction_id", next.ID),
		zap.String("bidder", bidder),
		zap.String("usd", usd.String()),
		zap.String("token", token))

	return next, nil
}

func (e *engine) SubmitCrossChainBid(ctx context.Context, msg *domain.BidMessage) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	record := &domain.CrossChainBid{
		MessageID:   msg.MessageID,
		AuctionID:   e.auction.ID,
		Bidder:      domain.NormalizeAddress(msg.Bidder),
		AmountUSD:   msg.AmountUSD,
		SourceChain: msg.SourceChain,
		ReceivedAt:  now,
	}

	active := e.auction.PhaseAt(now) == domain.PhaseActive
	if !active || msg.AmountUSD.LessThan(e.auction.MinAcceptableUSD()) {
		// late and losing bids are recorded anyway so a redelivery of the
		// same message stays a no-op
		if err := e.store.RecordCrossChainBid(ctx, record); err != nil {
			return false, err
		}
		logger.InfoCtx(ctx, "cross-chain bid recorded without admission",
			zap.String("auction_id", e.auction.ID),
			zap.String("message_id", msg.MessageID),
			zap.Bool("active", active),
			zap.String("usd", msg.AmountUSD.String()))
		return false, nil
	}

	record.IsCurrentWinner = true
	credit := e.displacedCredit(now)

	next := *e.auction
	next.HighestUSD = msg.AmountUSD
	next.HighestBidder = record.Bidder
	next.HighestPaymentToken = domain.PaymentTokenNative
	next.HighestTokenAmount = decimal.Zero
	next.WinningMessageID = msg.MessageID
	next.UpdatedAt = now

	if err := e.store.SaveAdmission(ctx, &next, record, credit); err != nil {
		return false, err
	}
	*e.auction = next

	logger.InfoCtx(ctx, "cross-chain bid admitted",
		zap.String("auction_id", next.ID),
		zap.String("message_id", msg.MessageID),
		zap.String("bidder", record.Bidder),
		zap.String("source_chain", string(msg.SourceChain)),
		zap.String("usd", msg.AmountUSD.String()))

	return true, nil
}

// displacedCredit builds the refund owed to the previous highest bidder.
// Only local bids have funds escrowed here; a displaced cross-chain bidder
// is refunded on its source chain by the relaying adapter.
func (e *engine) displacedCredit(now time.Time) *domain.RefundCredit {
	if !e.auction.HasBid() || e.auction.CrossChainWinner() {
		return nil
	}
	return &domain.RefundCredit{
		AuctionID:    e.auction.ID,
		Payee:        e.auction.HighestBidder,
		PaymentToken: e.auction.HighestPaymentToken,
		Amount:       e.auction.HighestTokenAmount,
		CreatedAt:    now,
	}
}

func (e *engine) Finalize(ctx context.Context) (domain.Auction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if e.auction.Ended {
		return domain.Auction{}, domain.ErrAlreadyFinalized
	}
	if now.Before(e.auction.EndTime) {
		return domain.Auction{}, domain.ErrAuctionNotYetEnded
	}

	// settlement runs before the ended flag is persisted. A failed transfer
	// leaves the auction finalizable again, and each completed step records
	// its own marker so a retry only performs what is still missing.
	switch {
	case !e.auction.HasBid():
		// no sale, the asset goes back to its owner
		if err := e.releaseAssetLocked(ctx, e.auction.AssetOwner); err != nil {
			return domain.Auction{}, err
		}

	case e.auction.CrossChainWinner():
		// the asset stays in escrow until the winner claims it on this chain

	default:
		if err := e.payoutProceedsLocked(ctx); err != nil {
			return domain.Auction{}, err
		}
		if err := e.releaseAssetLocked(ctx, e.auction.HighestBidder); err != nil {
			return domain.Auction{}, err
		}
	}

	next := *e.auction
	next.Ended = true
	next.UpdatedAt = now
	if err := e.store.SaveFinalization(ctx, &next); err != nil {
		return domain.Auction{}, err
	}
	*e.auction = next

	switch {
	case !next.HasBid():
		logger.InfoCtx(ctx, "auction finalized without bids",
			zap.String("auction_id", next.ID))
	case next.CrossChainWinner():
		logger.InfoCtx(ctx, "auction finalized with cross-chain winner",
			zap.String("auction_id", next.ID),
			zap.String("message_id", next.WinningMessageID),
			zap.String("usd", next.HighestUSD.String()))
	default:
		logger.InfoCtx(ctx, "auction finalized",
			zap.String("auction_id", next.ID),
			zap.String("winner", next.HighestBidder),
			zap.String("usd", next.HighestUSD.String()))
	}

	return next, nil
}

// payoutProceedsLocked pays the sale proceeds to the asset owner. Callers
// hold the mutex.
func (e *engine) payoutProceedsLocked(ctx context.Context) error {
	if e.auction.ProceedsPaid {
		return nil
	}
	if err := e.vault.Payout(ctx, e.auction.HighestPaymentToken, e.auction.AssetOwner, e.auction.HighestTokenAmount); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("auction_id", e.auction.ID))
		return err
	}
	if err := e.store.MarkProceedsPaid(ctx, e.auction.ID); err != nil {
		return err
	}
	e.auction.ProceedsPaid = true
	return nil
}

func (e *engine) ReleaseAssetToCrossChainWinner(ctx context.Context, recipient string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.auction.Ended {
		return domain.ErrAuctionNotYetEnded
	}
	if !e.auction.CrossChainWinner() {
		return domain.ErrNotCrossChainWinner
	}
	if e.auction.AssetReleased {
		return nil
	}
	return e.releaseAssetLocked(ctx, recipient)
}

// releaseAssetLocked moves the asset out of escrow. Callers hold the mutex.
func (e *engine) releaseAssetLocked(ctx context.Context, to string) error {
	if e.auction.AssetReleased {
		return nil
	}
	if err := e.assets.Release(ctx, e.auction.AssetRef, to); err != nil {
		return err
	}
	if err := e.store.MarkAssetReleased(ctx, e.auction.ID); err != nil {
		return err
	}
	e.auction.AssetReleased = true
	return nil
}
