package reconciler_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/mocks"
	"github.com/crosslot/auction-house/internal/reconciler"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	testAuctionID = "01JK0000000000000000000000"
	testBidder    = "0x2222222222222222222222222222222222222222"
	testSender    = "relayer-polygon"
)

// testReconcilerMocks contains all the mocks needed for testing the reconciler
type testReconcilerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	factory    *mocks.MockFactory
	engine     *mocks.MockEngine
	publisher  *mocks.MockPublisher
	vault      *mocks.MockTokenVault
	clock      *mocks.MockClock
	reconciler reconciler.Reconciler
}

func setupTestReconciler(t *testing.T, cfg reconciler.Config) *testReconcilerMocks {
	ctrl := gomock.NewController(t)

	tm := &testReconcilerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		factory:   mocks.NewMockFactory(ctrl),
		engine:    mocks.NewMockEngine(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		vault:     mocks.NewMockTokenVault(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	tm.reconciler = reconciler.NewReconciler(cfg, tm.store, tm.factory, tm.publisher, tm.vault, tm.clock)

	return tm
}

func tearDownTestReconciler(mocks *testReconcilerMocks) {
	mocks.ctrl.Finish()
}

func defaultConfig() reconciler.Config {
	return reconciler.Config{
		LocalChain:    domain.ChainEthereumMainnet,
		SenderID:      "relayer-ethereum",
		RelayFeeUSD:   decimal.NewFromInt(1),
		RelayFeeToken: domain.PaymentTokenNative,
	}
}

func validMessage() *domain.BidMessage {
	return &domain.BidMessage{
		MessageID:   "msg-1",
		AuctionID:   testAuctionID,
		Bidder:      testBidder,
		AmountUSD:   decimal.NewFromInt(15),
		SourceChain: domain.ChainPolygonMainnet,
		Sender:      testSender,
		SentAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReconciler_Receive(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	msg := validMessage()

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSourceChain, string(msg.SourceChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, msg.Sender).Return(true, nil)
	tm.store.EXPECT().HasCrossChainBid(ctx, msg.MessageID).Return(false, nil)
	tm.factory.EXPECT().Engine(msg.AuctionID).Return(tm.engine, nil)
	tm.engine.EXPECT().SubmitCrossChainBid(ctx, msg).Return(true, nil)

	require.NoError(t, tm.reconciler.Receive(ctx, msg))
}

func TestReconciler_Receive_InvalidMessage(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()

	err := tm.reconciler.Receive(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)

	msg := validMessage()
	msg.AmountUSD = decimal.Zero
	err = tm.reconciler.Receive(ctx, msg)
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
}

func TestReconciler_Receive_UnauthorizedSourceChain(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	msg := validMessage()

	// default deny, no further store access after the failed gate
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSourceChain, string(msg.SourceChain)).Return(false, nil)

	err := tm.reconciler.Receive(ctx, msg)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedSourceChain)
}

func TestReconciler_Receive_UnauthorizedSender(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	msg := validMessage()

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSourceChain, string(msg.SourceChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, msg.Sender).Return(false, nil)

	err := tm.reconciler.Receive(ctx, msg)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedSender)
}

func TestReconciler_Receive_DuplicateDroppedQuietly(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	msg := validMessage()

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSourceChain, string(msg.SourceChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, msg.Sender).Return(true, nil)
	// the message id was applied before, the engine is never consulted
	tm.store.EXPECT().HasCrossChainBid(ctx, msg.MessageID).Return(true, nil)

	require.NoError(t, tm.reconciler.Receive(ctx, msg))
}

func TestReconciler_Receive_UnknownAuction(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	msg := validMessage()

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSourceChain, string(msg.SourceChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, msg.Sender).Return(true, nil)
	tm.store.EXPECT().HasCrossChainBid(ctx, msg.MessageID).Return(false, nil)
	tm.factory.EXPECT().Engine(msg.AuctionID).Return(nil, domain.ErrAuctionNotFound)

	err := tm.reconciler.Receive(ctx, msg)
	assert.ErrorIs(t, err, domain.ErrAuctionNotFound)
}

func TestReconciler_SendBid(t *testing.T) {
	cfg := defaultConfig()
	tm := setupTestReconciler(t, cfg)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	bid := domain.OutboundBid{
		DestinationChain:   domain.ChainPolygonMainnet,
		DestinationAdapter: "wormhole",
		AuctionID:          "remote-auction",
		Bidder:             testBidder,
		AmountUSD:          decimal.NewFromInt(25),
	}

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowDestinationChain, string(bid.DestinationChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, cfg.SenderID).Return(true, nil)
	tm.vault.EXPECT().Pull(ctx, cfg.RelayFeeToken, testBidder, cfg.RelayFeeUSD).Return(nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.publisher.EXPECT().PublishBid(ctx, bid.DestinationChain, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Chain, msg *domain.BidMessage) error {
			assert.NotEmpty(t, msg.MessageID)
			assert.Equal(t, cfg.LocalChain, msg.SourceChain)
			assert.Equal(t, cfg.SenderID, msg.Sender)
			assert.True(t, msg.AmountUSD.Equal(bid.AmountUSD))
			return nil
		})
	tm.store.EXPECT().RecordOutboundMessage(ctx, gomock.Any()).Return(nil)

	record, err := tm.reconciler.SendBid(ctx, bid)
	require.NoError(t, err)
	assert.Equal(t, "remote-auction", record.AuctionID)
	assert.True(t, record.FeePaid.Equal(cfg.RelayFeeUSD))
	assert.Equal(t, now, record.SentAt)
}

func TestReconciler_SendBid_NoFeeConfigured(t *testing.T) {
	cfg := defaultConfig()
	cfg.RelayFeeUSD = decimal.Zero
	tm := setupTestReconciler(t, cfg)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	bid := domain.OutboundBid{
		DestinationChain: domain.ChainPolygonMainnet,
		AuctionID:        "remote-auction",
		Bidder:           testBidder,
		AmountUSD:        decimal.NewFromInt(25),
	}

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowDestinationChain, string(bid.DestinationChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, cfg.SenderID).Return(true, nil)
	tm.clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC))
	tm.publisher.EXPECT().PublishBid(ctx, bid.DestinationChain, gomock.Any()).Return(nil)
	tm.store.EXPECT().RecordOutboundMessage(ctx, gomock.Any()).Return(nil)

	_, err := tm.reconciler.SendBid(ctx, bid)
	require.NoError(t, err)
}

func TestReconciler_SendBid_UnauthorizedDestination(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	bid := domain.OutboundBid{
		DestinationChain: domain.ChainPolygonAmoy,
		AuctionID:        "remote-auction",
		Bidder:           testBidder,
		AmountUSD:        decimal.NewFromInt(25),
	}

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowDestinationChain, string(bid.DestinationChain)).Return(false, nil)

	_, err := tm.reconciler.SendBid(ctx, bid)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDestinationChain)
}

func TestReconciler_SendBid_UnauthorizedSender(t *testing.T) {
	cfg := defaultConfig()
	tm := setupTestReconciler(t, cfg)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	bid := domain.OutboundBid{
		DestinationChain: domain.ChainPolygonMainnet,
		AuctionID:        "remote-auction",
		Bidder:           testBidder,
		AmountUSD:        decimal.NewFromInt(25),
	}

	// a revoked sender is rejected before the relay fee is collected, the
	// vault sees no Pull
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowDestinationChain, string(bid.DestinationChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, cfg.SenderID).Return(false, nil)

	_, err := tm.reconciler.SendBid(ctx, bid)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedSender)
}

func TestReconciler_SendBid_NonPositiveAmount(t *testing.T) {
	tm := setupTestReconciler(t, defaultConfig())
	defer tearDownTestReconciler(tm)

	_, err := tm.reconciler.SendBid(context.Background(), domain.OutboundBid{
		DestinationChain: domain.ChainPolygonMainnet,
		AuctionID:        "remote-auction",
		Bidder:           testBidder,
		AmountUSD:        decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrBidTooLow)
}

func TestReconciler_SendBid_PublishFailure(t *testing.T) {
	cfg := defaultConfig()
	tm := setupTestReconciler(t, cfg)
	defer tearDownTestReconciler(tm)

	ctx := context.Background()
	pubErr := errors.New("nats: connection closed")
	bid := domain.OutboundBid{
		DestinationChain: domain.ChainPolygonMainnet,
		AuctionID:        "remote-auction",
		Bidder:           testBidder,
		AmountUSD:        decimal.NewFromInt(25),
	}

	tm.store.EXPECT().IsAllowed(ctx, domain.AllowDestinationChain, string(bid.DestinationChain)).Return(true, nil)
	tm.store.EXPECT().IsAllowed(ctx, domain.AllowSender, cfg.SenderID).Return(true, nil)
	tm.vault.EXPECT().Pull(ctx, cfg.RelayFeeToken, testBidder, cfg.RelayFeeUSD).Return(nil)
	tm.clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC))
	tm.publisher.EXPECT().PublishBid(ctx, bid.DestinationChain, gomock.Any()).Return(pubErr)

	_, err := tm.reconciler.SendBid(ctx, bid)
	assert.ErrorIs(t, err, pubErr)
}

func TestTerminal(t *testing.T) {
	assert.True(t, reconciler.Terminal(domain.ErrInvalidMessage))
	assert.True(t, reconciler.Terminal(domain.ErrUnauthorizedSourceChain))
	assert.True(t, reconciler.Terminal(domain.ErrUnauthorizedSender))
	assert.True(t, reconciler.Terminal(domain.ErrAuctionNotFound))

	assert.False(t, reconciler.Terminal(errors.New("database is starting up")))
	assert.False(t, reconciler.Terminal(domain.ErrAuctionNotActive))
}
