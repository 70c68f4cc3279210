package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainPolygonMainnet  Chain = "eip155:137"
	ChainPolygonAmoy     Chain = "eip155:80002"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet ||
		chain == ChainEthereumSepolia ||
		chain == ChainPolygonMainnet ||
		chain == ChainPolygonAmoy
}

// PaymentTokenNative marks a bid paid in the chain's native currency
// rather than a fungible token contract.
const PaymentTokenNative = ""

// AssetRef is the canonical asset identifier in format: chain:contract:tokenNumber
// (e.g., "eip155:11155111:0xabc...:42"). Each auction manages exactly one asset.
type AssetRef string

// NewAssetRef creates a new AssetRef
func NewAssetRef(chain Chain, contractAddress string, tokenNumber string) AssetRef {
	return AssetRef(fmt.Sprintf("%s:%s:%s", chain, contractAddress, tokenNumber))
}

// String returns the string representation of the AssetRef
func (a AssetRef) String() string {
	return string(a)
}

// Parse parses the AssetRef into chain, contract address, and token number
func (a AssetRef) Parse() (Chain, string, string) {
	parts := strings.Split(string(a), ":")
	if len(parts) != 4 {
		return "", "", ""
	}
	return Chain(fmt.Sprintf("%s:%s", parts[0], parts[1])), parts[2], parts[3]
}

// Valid checks if the AssetRef is well formed
func (a AssetRef) Valid() bool {
	chain, contractAddress, tokenNumber := a.Parse()
	if !IsValidChain(chain) {
		return false
	}
	if !common.IsHexAddress(contractAddress) {
		return false
	}
	return validTokenNumber(tokenNumber)
}

// Phase represents the lifecycle phase of an auction.
// Pending and Active are derived from the clock against the auction window;
// only the transition to Ended is stored explicitly.
type Phase string

const (
	PhasePending Phase = "pending"
	PhaseActive  Phase = "active"
	PhaseEnded   Phase = "ended"
)

// BidKind discriminates the two bid streams that converge on one arbitration rule.
type BidKind string

const (
	BidKindLocal      BidKind = "local"
	BidKindCrossChain BidKind = "cross_chain"
)

// Bid is the tagged variant consumed by the arbitration rule. Exactly one of
// the local or cross-chain field sets is populated, matching the kind.
type Bid struct {
	Kind      BidKind
	Bidder    string
	AmountUSD decimal.Decimal

	// Local fields: the native payment backing the bid.
	PaymentToken string
	TokenAmount  decimal.Decimal

	// Cross-chain fields: provenance of the relayed bid.
	MessageID   string
	SourceChain Chain
}

// Valid checks structural consistency of the tagged variant.
func (b *Bid) Valid() bool {
	if b.Bidder == "" || !b.AmountUSD.IsPositive() {
		return false
	}
	switch b.Kind {
	case BidKindLocal:
		return b.MessageID == "" && b.SourceChain == ""
	case BidKindCrossChain:
		return b.MessageID != "" && IsValidChain(b.SourceChain) &&
			b.PaymentToken == PaymentTokenNative && b.TokenAmount.IsZero()
	default:
		return false
	}
}

// Auction is the authoritative per-asset auction state. It is owned by one
// engine instance and shared by reference with the reconciler so both bid
// streams observe and mutate the same record.
type Auction struct {
	ID               string
	AssetRef         AssetRef
	AssetOwner       string
	PaymentToken     string
	StartingPriceUSD decimal.Decimal
	MinIncrementUSD  decimal.Decimal
	StartTime        time.Time
	EndTime          time.Time

	// Ended guards the single ACTIVE -> ENDED transition; the earlier phases
	// are computed from the clock.
	Ended bool

	// AssetReleased and ProceedsPaid record which settlement steps have
	// completed so an interrupted finalization can resume without
	// double-transferring.
	AssetReleased bool
	ProceedsPaid  bool

	HighestUSD          decimal.Decimal
	HighestBidder       string
	HighestPaymentToken string
	HighestTokenAmount  decimal.Decimal
	WinningMessageID    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhaseAt derives the lifecycle phase at the given instant.
func (a Auction) PhaseAt(now time.Time) Phase {
	if a.Ended || !now.Before(a.EndTime) {
		return PhaseEnded
	}
	if now.Before(a.StartTime) {
		return PhasePending
	}
	return PhaseActive
}

// HasBid reports whether any bid has ever been admitted.
func (a Auction) HasBid() bool {
	return a.HighestBidder != ""
}

// CrossChainWinner reports whether the current winner arrived cross-chain.
func (a Auction) CrossChainWinner() bool {
	return a.WinningMessageID != ""
}

// MinAcceptableUSD returns the lowest USD amount the next bid must reach:
// the starting price for the first bid, previous highest plus the minimum
// increment afterwards.
func (a Auction) MinAcceptableUSD() decimal.Decimal {
	if !a.HasBid() {
		return a.StartingPriceUSD
	}
	return a.HighestUSD.Add(a.MinIncrementUSD)
}

// CrossChainBid is the append-only record of a relayed bid, one per distinct
// message id ever accepted. Records are kept even when the bid loses.
type CrossChainBid struct {
	MessageID       string          `json:"message_id"`
	AuctionID       string          `json:"auction_id"`
	Bidder          string          `json:"bidder"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	SourceChain     Chain           `json:"source_chain"`
	IsCurrentWinner bool            `json:"is_current_winner"`
	ReceivedAt      time.Time       `json:"received_at"`
}

// BidMessage is the wire format of a relayed cross-chain bid as delivered by
// the message transport. Delivery is at-least-once and unordered; MessageID
// is globally unique per (source chain, transport) pair.
type BidMessage struct {
	MessageID   string          `json:"message_id"`
	AuctionID   string          `json:"auction_id"`
	Bidder      string          `json:"bidder"`
	AmountUSD   decimal.Decimal `json:"amount_usd"`
	SourceChain Chain           `json:"source_chain"`
	Sender      string          `json:"sender"`
	SentAt      time.Time       `json:"sent_at"`
}

// Valid checks the message carries everything the reconciler needs.
func (m *BidMessage) Valid() bool {
	return m.MessageID != "" &&
		m.AuctionID != "" &&
		m.Bidder != "" &&
		m.AmountUSD.IsPositive() &&
		IsValidChain(m.SourceChain) &&
		m.Sender != ""
}

// RefundCredit is a withdrawable balance owed to an outbid local bidder.
// Refunds are pull-based: losing a bid credits the previous bidder here
// instead of pushing funds, so a refusing payee cannot block admission.
type RefundCredit struct {
	ID           int64           `json:"id"`
	AuctionID    string          `json:"auction_id"`
	Payee        string          `json:"payee"`
	PaymentToken string          `json:"payment_token"`
	Amount       decimal.Decimal `json:"amount"`
	Withdrawn    bool            `json:"withdrawn"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OutboundBid is a request to relay a bid from this chain to an auction
// hosted elsewhere.
type OutboundBid struct {
	DestinationChain   Chain
	DestinationAdapter string
	AuctionID          string
	Bidder             string
	AmountUSD          decimal.Decimal
}

// OutboundMessage is the durable record correlating an outbound message id
// with the bid it carried, for later audit.
type OutboundMessage struct {
	MessageID          string          `json:"message_id"`
	DestinationChain   Chain           `json:"destination_chain"`
	DestinationAdapter string          `json:"destination_adapter"`
	AuctionID          string          `json:"auction_id"`
	Bidder             string          `json:"bidder"`
	AmountUSD          decimal.Decimal `json:"amount_usd"`
	FeePaid            decimal.Decimal `json:"fee_paid"`
	SentAt             time.Time       `json:"sent_at"`
}

// AllowlistKind identifies which default-deny allowlist an entry belongs to.
type AllowlistKind string

const (
	AllowSourceChain      AllowlistKind = "source_chain"
	AllowDestinationChain AllowlistKind = "destination_chain"
	AllowSender           AllowlistKind = "sender"
)

// NormalizeAddress normalizes an EVM address to its checksummed form.
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).String()
	}
	return address
}

// validTokenNumber checks if a token number is valid
func validTokenNumber(tokenNumber string) bool {
	return regexp.MustCompile(`^[0-9]+$`).MatchString(tokenNumber)
}
