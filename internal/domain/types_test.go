package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssetRef_Parse(t *testing.T) {
	ref := NewAssetRef(ChainEthereumSepolia, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1", "42")
	chain, contract, tokenNumber := ref.Parse()
	assert.Equal(t, ChainEthereumSepolia, chain)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1", contract)
	assert.Equal(t, "42", tokenNumber)
}

func TestAssetRef_Valid(t *testing.T) {
	tests := []struct {
		name     string
		ref      AssetRef
		expected bool
	}{
		{
			name:     "valid sepolia asset",
			ref:      NewAssetRef(ChainEthereumSepolia, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1", "42"),
			expected: true,
		},
		{
			name:     "valid polygon asset",
			ref:      NewAssetRef(ChainPolygonMainnet, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1", "0"),
			expected: true,
		},
		{
			name:     "unknown chain",
			ref:      AssetRef("eip155:999:0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1:42"),
			expected: false,
		},
		{
			name:     "bad contract address",
			ref:      AssetRef("eip155:1:not-an-address:42"),
			expected: false,
		},
		{
			name:     "bad token number",
			ref:      NewAssetRef(ChainEthereumMainnet, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1", "abc"),
			expected: false,
		},
		{
			name:     "missing parts",
			ref:      AssetRef("eip155:1"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Valid())
		})
	}
}

func TestAuction_PhaseAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	a := &Auction{StartTime: start, EndTime: end}

	tests := []struct {
		name     string
		now      time.Time
		ended    bool
		expected Phase
	}{
		{"before start", start.Add(-time.Minute), false, PhasePending},
		{"at start", start, false, PhaseActive},
		{"mid window", start.Add(30 * time.Minute), false, PhaseActive},
		{"at end, exclusive", end, false, PhaseEnded},
		{"after end", end.Add(time.Minute), false, PhaseEnded},
		{"finalized early", start.Add(30 * time.Minute), true, PhaseEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Ended = tt.ended
			assert.Equal(t, tt.expected, a.PhaseAt(tt.now))
		})
	}
}

func TestAuction_MinAcceptableUSD(t *testing.T) {
	a := &Auction{
		StartingPriceUSD: decimal.NewFromInt(10),
		MinIncrementUSD:  decimal.NewFromInt(1),
	}

	// no bid yet, the starting price is the floor
	assert.True(t, a.MinAcceptableUSD().Equal(decimal.NewFromInt(10)))

	a.HighestBidder = "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1"
	a.HighestUSD = decimal.NewFromInt(15)
	assert.True(t, a.MinAcceptableUSD().Equal(decimal.NewFromInt(16)))
}

func TestAuction_CrossChainWinner(t *testing.T) {
	a := &Auction{}
	assert.False(t, a.CrossChainWinner())

	a.WinningMessageID = "msg-1"
	assert.True(t, a.CrossChainWinner())
}

func TestAuction_QueriesOnCopy(t *testing.T) {
	// engine.Auction() hands out copies, so the read-only queries must be
	// callable on a plain value
	snapshot := func() Auction {
		return Auction{
			StartingPriceUSD: decimal.NewFromInt(10),
			MinIncrementUSD:  decimal.NewFromInt(1),
			HighestBidder:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
			HighestUSD:       decimal.NewFromInt(15),
			WinningMessageID: "msg-1",
			EndTime:          time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
		}
	}

	assert.True(t, snapshot().HasBid())
	assert.True(t, snapshot().CrossChainWinner())
	assert.True(t, snapshot().MinAcceptableUSD().Equal(decimal.NewFromInt(16)))
	assert.Equal(t, PhaseEnded, snapshot().PhaseAt(time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)))
}

func TestBidMessage_Valid(t *testing.T) {
	valid := BidMessage{
		MessageID:   "msg-1",
		AuctionID:   "auction-1",
		Bidder:      "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
		AmountUSD:   decimal.NewFromInt(15),
		SourceChain: ChainPolygonMainnet,
		Sender:      "relayer-1",
	}

	tests := []struct {
		name     string
		mutate   func(*BidMessage)
		expected bool
	}{
		{"valid", func(m *BidMessage) {}, true},
		{"missing message id", func(m *BidMessage) { m.MessageID = "" }, false},
		{"missing auction id", func(m *BidMessage) { m.AuctionID = "" }, false},
		{"missing bidder", func(m *BidMessage) { m.Bidder = "" }, false},
		{"zero amount", func(m *BidMessage) { m.AmountUSD = decimal.Zero }, false},
		{"negative amount", func(m *BidMessage) { m.AmountUSD = decimal.NewFromInt(-1) }, false},
		{"unknown source chain", func(m *BidMessage) { m.SourceChain = "eip155:999" }, false},
		{"missing sender", func(m *BidMessage) { m.Sender = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.mutate(&msg)
			assert.Equal(t, tt.expected, msg.Valid())
		})
	}
}

func TestBid_Valid(t *testing.T) {
	tests := []struct {
		name     string
		bid      Bid
		expected bool
	}{
		{
			name: "local bid",
			bid: Bid{
				Kind:         BidKindLocal,
				Bidder:       "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
				AmountUSD:    decimal.NewFromInt(15),
				PaymentToken: PaymentTokenNative,
				TokenAmount:  decimal.RequireFromString("0.005"),
			},
			expected: true,
		},
		{
			name: "cross-chain bid",
			bid: Bid{
				Kind:        BidKindCrossChain,
				Bidder:      "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
				AmountUSD:   decimal.NewFromInt(15),
				MessageID:   "msg-1",
				SourceChain: ChainPolygonMainnet,
			},
			expected: true,
		},
		{
			name: "local bid carrying cross-chain fields",
			bid: Bid{
				Kind:      BidKindLocal,
				Bidder:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
				AmountUSD: decimal.NewFromInt(15),
				MessageID: "msg-1",
			},
			expected: false,
		},
		{
			name: "cross-chain bid without message id",
			bid: Bid{
				Kind:        BidKindCrossChain,
				Bidder:      "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
				AmountUSD:   decimal.NewFromInt(15),
				SourceChain: ChainPolygonMainnet,
			},
			expected: false,
		},
		{
			name: "unknown kind",
			bid: Bid{
				Kind:      BidKind("other"),
				Bidder:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
				AmountUSD: decimal.NewFromInt(15),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.bid.Valid())
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	// hex addresses are checksummed; digits carry no case so this one is
	// its own checksum form
	assert.Equal(t,
		"0x1111111111111111111111111111111111111111",
		NormalizeAddress("0x1111111111111111111111111111111111111111"))

	// non-hex identifiers pass through untouched
	assert.Equal(t, "relayer-1", NormalizeAddress("relayer-1"))
}
