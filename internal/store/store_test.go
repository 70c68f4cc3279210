package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslot/auction-house/internal/domain"
)

// StoreInitFunc creates a fresh store for a test
type StoreInitFunc func(t *testing.T) Store

// StoreCleanupFunc tears down a store after a test
type StoreCleanupFunc func(t *testing.T)

func newTestAuction(id string) *domain.Auction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Auction{
		ID:               id,
		AssetRef:         domain.NewAssetRef(domain.ChainEthereumSepolia, "0x1111111111111111111111111111111111111111", id[len(id)-1:]),
		AssetOwner:       "0x2222222222222222222222222222222222222222",
		StartingPriceUSD: decimal.NewFromInt(10),
		MinIncrementUSD:  decimal.NewFromInt(1),
		StartTime:        now,
		EndTime:          now.Add(time.Hour),
		HighestUSD:       decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// RunStoreTests runs the full store test suite against any Store implementation
func RunStoreTests(t *testing.T, initDB StoreInitFunc, cleanupDB StoreCleanupFunc) {
	t.Run("AuctionRoundTrip", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		got, err := s.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.Equal(t, auction.ID, got.ID)
		assert.Equal(t, auction.AssetRef, got.AssetRef)
		assert.Equal(t, auction.AssetOwner, got.AssetOwner)
		assert.True(t, got.StartingPriceUSD.Equal(decimal.NewFromInt(10)))
		assert.False(t, got.Ended)
		assert.False(t, got.HasBid())

		_, err = s.GetAuction(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrAuctionNotFound)
	})

	t.Run("ListAuctions", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		require.NoError(t, s.CreateAuction(ctx, newTestAuction("01auction1")))
		require.NoError(t, s.CreateAuction(ctx, newTestAuction("01auction2")))

		auctions, err := s.ListAuctions(ctx)
		require.NoError(t, err)
		require.Len(t, auctions, 2)
	})

	t.Run("SaveAdmissionLocalBid", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		auction.HighestUSD = decimal.NewFromInt(12)
		auction.HighestBidder = "0x3333333333333333333333333333333333333333"
		auction.HighestTokenAmount = decimal.NewFromInt(12)
		auction.UpdatedAt = time.Now().UTC()
		require.NoError(t, s.SaveAdmission(ctx, auction, nil, nil))

		got, err := s.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.True(t, got.HighestUSD.Equal(decimal.NewFromInt(12)))
		assert.Equal(t, auction.HighestBidder, got.HighestBidder)
		assert.Empty(t, got.WinningMessageID)
	})

	t.Run("SaveAdmissionMissingAuction", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		auction := newTestAuction("01auction1")
		err := s.SaveAdmission(context.Background(), auction, nil, nil)
		assert.ErrorIs(t, err, domain.ErrAuctionNotFound)
	})

	t.Run("SaveAdmissionWinnerFlip", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		// first a cross-chain bid takes the lead
		auction.HighestUSD = decimal.NewFromInt(15)
		auction.HighestBidder = "0xaaa0000000000000000000000000000000000001"
		auction.WinningMessageID = "msg-1"
		require.NoError(t, s.SaveAdmission(ctx, auction, &domain.CrossChainBid{
			MessageID:       "msg-1",
			AuctionID:       auction.ID,
			Bidder:          auction.HighestBidder,
			AmountUSD:       decimal.NewFromInt(15),
			SourceChain:     domain.ChainPolygonAmoy,
			IsCurrentWinner: true,
			ReceivedAt:      time.Now().UTC(),
		}, nil))

		bid, err := s.GetCrossChainBid(ctx, "msg-1")
		require.NoError(t, err)
		assert.True(t, bid.IsCurrentWinner)

		// then a second cross-chain bid displaces it
		auction.HighestUSD = decimal.NewFromInt(20)
		auction.HighestBidder = "0xaaa0000000000000000000000000000000000002"
		auction.WinningMessageID = "msg-2"
		require.NoError(t, s.SaveAdmission(ctx, auction, &domain.CrossChainBid{
			MessageID:       "msg-2",
			AuctionID:       auction.ID,
			Bidder:          auction.HighestBidder,
			AmountUSD:       decimal.NewFromInt(20),
			SourceChain:     domain.ChainPolygonAmoy,
			IsCurrentWinner: true,
			ReceivedAt:      time.Now().UTC(),
		}, nil))

		bid, err = s.GetCrossChainBid(ctx, "msg-1")
		require.NoError(t, err)
		assert.False(t, bid.IsCurrentWinner)

		bid, err = s.GetCrossChainBid(ctx, "msg-2")
		require.NoError(t, err)
		assert.True(t, bid.IsCurrentWinner)

		ids, err := s.ListCrossChainBidIDs(ctx, auction.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"msg-1", "msg-2"}, ids)
	})

	t.Run("SaveAdmissionLocalDisplacesCrossChain", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		auction.HighestUSD = decimal.NewFromInt(15)
		auction.HighestBidder = "0xaaa0000000000000000000000000000000000001"
		auction.WinningMessageID = "msg-1"
		require.NoError(t, s.SaveAdmission(ctx, auction, &domain.CrossChainBid{
			MessageID:       "msg-1",
			AuctionID:       auction.ID,
			Bidder:          auction.HighestBidder,
			AmountUSD:       decimal.NewFromInt(15),
			SourceChain:     domain.ChainPolygonAmoy,
			IsCurrentWinner: true,
			ReceivedAt:      time.Now().UTC(),
		}, nil))

		// a local bid takes over, the cross-chain marker must clear
		auction.HighestUSD = decimal.NewFromInt(20)
		auction.HighestBidder = "0x3333333333333333333333333333333333333333"
		auction.HighestTokenAmount = decimal.NewFromInt(20)
		auction.WinningMessageID = ""
		require.NoError(t, s.SaveAdmission(ctx, auction, nil, nil))

		bid, err := s.GetCrossChainBid(ctx, "msg-1")
		require.NoError(t, err)
		assert.False(t, bid.IsCurrentWinner)

		got, err := s.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.Empty(t, got.WinningMessageID)
	})

	t.Run("SaveAdmissionRefundCredit", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		displaced := "0x4444444444444444444444444444444444444444"
		auction.HighestUSD = decimal.NewFromInt(12)
		auction.HighestBidder = "0x3333333333333333333333333333333333333333"
		require.NoError(t, s.SaveAdmission(ctx, auction, nil, &domain.RefundCredit{
			AuctionID: auction.ID,
			Payee:     displaced,
			Amount:    decimal.NewFromInt(10),
			CreatedAt: time.Now().UTC(),
		}))

		credits, err := s.ListRefundCredits(ctx, displaced)
		require.NoError(t, err)
		require.Len(t, credits, 1)
		assert.True(t, credits[0].Amount.Equal(decimal.NewFromInt(10)))
		assert.False(t, credits[0].Withdrawn)
	})

	t.Run("FinalizeOnce", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		auction.Ended = true
		auction.UpdatedAt = time.Now().UTC()
		require.NoError(t, s.SaveFinalization(ctx, auction))

		err := s.SaveFinalization(ctx, auction)
		assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)

		got, err := s.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.True(t, got.Ended)
	})

	t.Run("MarkAssetReleased", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))
		require.NoError(t, s.MarkAssetReleased(ctx, auction.ID))

		got, err := s.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.True(t, got.AssetReleased)
	})

	t.Run("MarkProceedsPaid", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))
		require.NoError(t, s.MarkProceedsPaid(ctx, auction.ID))

		got, err := s.GetAuction(ctx, auction.ID)
		require.NoError(t, err)
		assert.True(t, got.ProceedsPaid)
		assert.False(t, got.Ended)
	})

	t.Run("CrossChainBidDedup", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		seen, err := s.HasCrossChainBid(ctx, "msg-1")
		require.NoError(t, err)
		assert.False(t, seen)

		bid := &domain.CrossChainBid{
			MessageID:   "msg-1",
			AuctionID:   "01auction1",
			Bidder:      "0xaaa0000000000000000000000000000000000001",
			AmountUSD:   decimal.NewFromInt(8),
			SourceChain: domain.ChainPolygonAmoy,
			ReceivedAt:  time.Now().UTC(),
		}
		require.NoError(t, s.RecordCrossChainBid(ctx, bid))

		// redelivery of the same message id is a no-op
		require.NoError(t, s.RecordCrossChainBid(ctx, bid))

		seen, err = s.HasCrossChainBid(ctx, "msg-1")
		require.NoError(t, err)
		assert.True(t, seen)

		ids, err := s.ListCrossChainBidIDs(ctx, "01auction1")
		require.NoError(t, err)
		assert.Equal(t, []string{"msg-1"}, ids)

		_, err = s.GetCrossChainBid(ctx, "msg-2")
		assert.ErrorIs(t, err, domain.ErrMessageNotFound)
	})

	t.Run("AllowlistDefaultDeny", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		allowed, err := s.IsAllowed(ctx, domain.AllowSourceChain, string(domain.ChainPolygonAmoy))
		require.NoError(t, err)
		assert.False(t, allowed)

		require.NoError(t, s.SetAllowed(ctx, domain.AllowSourceChain, string(domain.ChainPolygonAmoy), true))

		allowed, err = s.IsAllowed(ctx, domain.AllowSourceChain, string(domain.ChainPolygonAmoy))
		require.NoError(t, err)
		assert.True(t, allowed)

		// revocation wins over the earlier grant
		require.NoError(t, s.SetAllowed(ctx, domain.AllowSourceChain, string(domain.ChainPolygonAmoy), false))

		allowed, err = s.IsAllowed(ctx, domain.AllowSourceChain, string(domain.ChainPolygonAmoy))
		require.NoError(t, err)
		assert.False(t, allowed)

		entries, err := s.ListAllowlist(ctx, domain.AllowSourceChain)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, string(domain.ChainPolygonAmoy), entries[0].Value)
	})

	t.Run("AllowlistKindsIndependent", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		sender := "0x5555555555555555555555555555555555555555"
		require.NoError(t, s.SetAllowed(ctx, domain.AllowSender, sender, true))

		allowed, err := s.IsAllowed(ctx, domain.AllowSourceChain, sender)
		require.NoError(t, err)
		assert.False(t, allowed)

		allowed, err = s.IsAllowed(ctx, domain.AllowSender, sender)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("OutboundMessages", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		msg := &domain.OutboundMessage{
			MessageID:          "out-1",
			DestinationChain:   domain.ChainEthereumSepolia,
			DestinationAdapter: "0x6666666666666666666666666666666666666666",
			AuctionID:          "remote-auction",
			Bidder:             "0x7777777777777777777777777777777777777777",
			AmountUSD:          decimal.NewFromInt(25),
			FeePaid:            decimal.NewFromFloat(0.5),
			SentAt:             time.Now().UTC().Truncate(time.Microsecond),
		}
		require.NoError(t, s.RecordOutboundMessage(ctx, msg))

		msgs, err := s.ListOutboundMessages(ctx, "remote-auction")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "out-1", msgs[0].MessageID)
		assert.True(t, msgs[0].AmountUSD.Equal(decimal.NewFromInt(25)))
		assert.True(t, msgs[0].FeePaid.Equal(decimal.NewFromFloat(0.5)))
	})

	t.Run("RefundCreditClaim", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		payee := "0x4444444444444444444444444444444444444444"
		require.NoError(t, s.SaveAdmission(ctx, auction, nil, &domain.RefundCredit{
			AuctionID: auction.ID,
			Payee:     payee,
			Amount:    decimal.NewFromInt(10),
			CreatedAt: time.Now().UTC(),
		}))
		require.NoError(t, s.SaveAdmission(ctx, auction, nil, &domain.RefundCredit{
			AuctionID: auction.ID,
			Payee:     payee,
			Amount:    decimal.NewFromInt(12),
			CreatedAt: time.Now().UTC(),
		}))

		claimed, err := s.ClaimRefundCredits(ctx, payee)
		require.NoError(t, err)
		require.Len(t, claimed, 2)

		// nothing left to claim
		claimed, err = s.ClaimRefundCredits(ctx, payee)
		require.NoError(t, err)
		assert.Empty(t, claimed)

		credits, err := s.ListRefundCredits(ctx, payee)
		require.NoError(t, err)
		assert.Empty(t, credits)
	})

	t.Run("RefundCreditReopen", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)
		ctx := context.Background()

		auction := newTestAuction("01auction1")
		require.NoError(t, s.CreateAuction(ctx, auction))

		payee := "0x4444444444444444444444444444444444444444"
		require.NoError(t, s.SaveAdmission(ctx, auction, nil, &domain.RefundCredit{
			AuctionID: auction.ID,
			Payee:     payee,
			Amount:    decimal.NewFromInt(10),
			CreatedAt: time.Now().UTC(),
		}))

		claimed, err := s.ClaimRefundCredits(ctx, payee)
		require.NoError(t, err)
		require.Len(t, claimed, 1)

		require.NoError(t, s.ReopenRefundCredit(ctx, claimed[0].ID))

		credits, err := s.ListRefundCredits(ctx, payee)
		require.NoError(t, err)
		require.Len(t, credits, 1)
	})
}
