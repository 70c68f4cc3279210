package auction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/mocks"
)

// testFactoryMocks contains all the mocks needed for testing the factory
type testFactoryMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	clock   *mocks.MockClock
	oracle  *mocks.MockPriceOracle
	assets  *mocks.MockAssetRegistry
	vault   *mocks.MockTokenVault
	factory auction.Factory
}

func setupTestFactory(t *testing.T) *testFactoryMocks {
	ctrl := gomock.NewController(t)

	tm := &testFactoryMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		clock:  mocks.NewMockClock(ctrl),
		oracle: mocks.NewMockPriceOracle(ctrl),
		assets: mocks.NewMockAssetRegistry(ctrl),
		vault:  mocks.NewMockTokenVault(ctrl),
	}

	tm.factory = auction.NewFactory(tm.store, tm.clock, tm.oracle, tm.assets, tm.vault)

	return tm
}

func tearDownTestFactory(mocks *testFactoryMocks) {
	mocks.ctrl.Finish()
}

func newTestCreateParams() auction.CreateParams {
	return auction.CreateParams{
		AssetRef:         domain.NewAssetRef(domain.ChainEthereumSepolia, "0x6666666666666666666666666666666666666666", "42"),
		AssetOwner:       testOwner,
		PaymentToken:     domain.PaymentTokenNative,
		StartingPriceUSD: decimal.NewFromInt(10),
		MinIncrementUSD:  decimal.NewFromInt(1),
		Duration:         time.Hour,
	}
}

func TestFactory_CreateAuction(t *testing.T) {
	tm := setupTestFactory(t)
	defer tearDownTestFactory(tm)

	ctx := context.Background()
	params := newTestCreateParams()

	tm.clock.EXPECT().Now().Return(testStart).AnyTimes()
	tm.assets.EXPECT().Hold(ctx, params.AssetRef, testOwner).Return(nil)
	tm.store.EXPECT().CreateAuction(ctx, gomock.Any()).Return(nil)

	created, err := tm.factory.CreateAuction(ctx, params)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, testOwner, created.AssetOwner)
	assert.Equal(t, testStart, created.StartTime)
	assert.Equal(t, testStart.Add(time.Hour), created.EndTime)

	// the factory owns the engine for the new auction
	eng, err := tm.factory.Engine(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, eng.Auction().ID)
}

func TestFactory_CreateAuction_InvalidParams(t *testing.T) {
	tm := setupTestFactory(t)
	defer tearDownTestFactory(tm)

	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*auction.CreateParams)
	}{
		{"bad asset ref", func(p *auction.CreateParams) { p.AssetRef = "not-an-asset" }},
		{"missing owner", func(p *auction.CreateParams) { p.AssetOwner = "" }},
		{"zero starting price", func(p *auction.CreateParams) { p.StartingPriceUSD = decimal.Zero }},
		{"negative increment", func(p *auction.CreateParams) { p.MinIncrementUSD = decimal.NewFromInt(-1) }},
		{"zero duration", func(p *auction.CreateParams) { p.Duration = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := newTestCreateParams()
			tc.mutate(&params)
			_, err := tm.factory.CreateAuction(ctx, params)
			assert.Error(t, err)
		})
	}
}

func TestFactory_CreateAuction_EscrowFailure(t *testing.T) {
	tm := setupTestFactory(t)
	defer tearDownTestFactory(tm)

	ctx := context.Background()
	params := newTestCreateParams()

	tm.clock.EXPECT().Now().Return(testStart).AnyTimes()
	tm.assets.EXPECT().Hold(ctx, params.AssetRef, testOwner).Return(domain.ErrTransferFailed)

	_, err := tm.factory.CreateAuction(ctx, params)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
}

func TestFactory_CreateAuction_StoreFailureReleasesAsset(t *testing.T) {
	tm := setupTestFactory(t)
	defer tearDownTestFactory(tm)

	ctx := context.Background()
	params := newTestCreateParams()
	storeErr := errors.New("connection lost")

	tm.clock.EXPECT().Now().Return(testStart).AnyTimes()
	tm.assets.EXPECT().Hold(ctx, params.AssetRef, testOwner).Return(nil)
	tm.store.EXPECT().CreateAuction(ctx, gomock.Any()).Return(storeErr)
	// the asset goes back to the owner when persisting fails
	tm.assets.EXPECT().Release(ctx, params.AssetRef, testOwner).Return(nil)

	_, err := tm.factory.CreateAuction(ctx, params)
	assert.ErrorIs(t, err, storeErr)
}

func TestFactory_Engine_Unknown(t *testing.T) {
	tm := setupTestFactory(t)
	defer tearDownTestFactory(tm)

	_, err := tm.factory.Engine("missing")
	assert.ErrorIs(t, err, domain.ErrAuctionNotFound)
}

func TestFactory_LoadExisting(t *testing.T) {
	tm := setupTestFactory(t)
	defer tearDownTestFactory(tm)

	ctx := context.Background()
	stored := newTestAuction()
	tm.store.EXPECT().ListAuctions(ctx).Return([]*domain.Auction{stored}, nil)

	require.NoError(t, tm.factory.LoadExisting(ctx))

	eng, err := tm.factory.Engine(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, eng.Auction().ID)
	assert.Len(t, tm.factory.List(), 1)
}
