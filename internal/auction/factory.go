package auction

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/oracle"
	"github.com/crosslot/auction-house/internal/store"
)

// CreateParams describes a new auction. The asset is escrowed at creation,
// a failed escrow transfer aborts the whole operation.
type CreateParams struct {
	AssetRef         domain.AssetRef
	AssetOwner       string
	PaymentToken     string
	StartingPriceUSD decimal.Decimal
	MinIncrementUSD  decimal.Decimal
	StartTime        time.Time
	Duration         time.Duration
}

func (p *CreateParams) validate() error {
	if !p.AssetRef.Valid() {
		return errors.New("invalid asset reference")
	}
	if p.AssetOwner == "" {
		return errors.New("asset owner is required")
	}
	if !p.StartingPriceUSD.IsPositive() {
		return errors.New("starting price must be positive")
	}
	if p.MinIncrementUSD.IsNegative() {
		return errors.New("minimum increment cannot be negative")
	}
	if p.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

// Factory creates auctions and hands out the engine owning each one.
// All lookups from the API and the reconciler go through the same factory so
// every auction id maps to exactly one engine instance.
//
//go:generate mockgen -source=factory.go -destination=../mocks/factory.go -package=mocks -mock_names=Factory=MockFactory
type Factory interface {
	// CreateAuction escrows the asset and opens a new auction
	CreateAuction(ctx context.Context, params CreateParams) (domain.Auction, error)
	// Engine returns the engine owning an auction, domain.ErrAuctionNotFound when absent
	Engine(id string) (Engine, error)
	// List returns the current state of every known auction
	List() []domain.Auction
	// LoadExisting rebuilds engines for auctions already persisted
	LoadExisting(ctx context.Context) error
}

type factory struct {
	mu      sync.Mutex
	engines map[string]Engine

	store  store.Store
	clock  adapter.Clock
	oracle oracle.PriceOracle
	assets escrow.AssetRegistry
	vault  escrow.TokenVault
}

// NewFactory creates a new auction factory
func NewFactory(
	st store.Store,
	clock adapter.Clock,
	priceOracle oracle.PriceOracle,
	assets escrow.AssetRegistry,
	vault escrow.TokenVault,
) Factory {
	return &factory{
		engines: map[string]Engine{},
		store:   st,
		clock:   clock,
		oracle:  priceOracle,
		assets:  assets,
		vault:   vault,
	}
}

func (f *factory) CreateAuction(ctx context.Context, params CreateParams) (domain.Auction, error) {
	if err := params.validate(); err != nil {
		return domain.Auction{}, err
	}

	now := f.clock.Now()
	owner := domain.NormalizeAddress(params.AssetOwner)
	startTime := params.StartTime
	if startTime.IsZero() {
		startTime = now
	}

	if err := f.assets.Hold(ctx, params.AssetRef, owner); err != nil {
		return domain.Auction{}, err
	}

	auction := &domain.Auction{
		ID:               ulid.MustNewDefault(now).String(),
		AssetRef:         params.AssetRef,
		AssetOwner:       owner,
		PaymentToken:     params.PaymentToken,
		StartingPriceUSD: params.StartingPriceUSD,
		MinIncrementUSD:  params.MinIncrementUSD,
		StartTime:        startTime,
		EndTime:          startTime.Add(params.Duration),
		HighestUSD:       decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := f.store.CreateAuction(ctx, auction); err != nil {
		// undo the escrow so the asset is not stranded
		if releaseErr := f.assets.Release(ctx, auction.AssetRef, owner); releaseErr != nil {
			logger.ErrorCtx(ctx, releaseErr, zap.String("asset_ref", auction.AssetRef.String()))
		}
		return domain.Auction{}, err
	}

	eng := NewEngine(auction, f.store, f.clock, f.oracle, f.assets, f.vault)
	f.mu.Lock()
	f.engines[auction.ID] = eng
	f.mu.Unlock()

	logger.InfoCtx(ctx, "auction created",
		zap.String("auction_id", auction.ID),
		zap.String("asset_ref", auction.AssetRef.String()),
		zap.Time("end_time", auction.EndTime))

	return *auction, nil
}

func (f *factory) Engine(id string) (Engine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	eng, ok := f.engines[id]
	if !ok {
		return nil, domain.ErrAuctionNotFound
	}
	return eng, nil
}

func (f *factory) List() []domain.Auction {
	f.mu.Lock()
	engines := make([]Engine, 0, len(f.engines))
	for _, eng := range f.engines {
		engines = append(engines, eng)
	}
	f.mu.Unlock()

	auctions := make([]domain.Auction, 0, len(engines))
	for _, eng := range engines {
		auctions = append(auctions, eng.Auction())
	}
	return auctions
}

func (f *factory) LoadExisting(ctx context.Context) error {
	auctions, err := f.store.ListAuctions(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, auction := range auctions {
		if _, ok := f.engines[auction.ID]; ok {
			continue
		}
		f.engines[auction.ID] = NewEngine(auction, f.store, f.clock, f.oracle, f.assets, f.vault)
	}

	logger.InfoCtx(ctx, "auctions loaded", zap.Int("count", len(auctions)))
	return nil
}
