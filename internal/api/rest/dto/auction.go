package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crosslot/auction-house/internal/domain"
)

// CreateAuctionRequest is the payload for opening a new auction
type CreateAuctionRequest struct {
	AssetRef         string          `json:"asset_ref" binding:"required"`
	AssetOwner       string          `json:"asset_owner" binding:"required"`
	PaymentToken     string          `json:"payment_token"`
	StartingPriceUSD decimal.Decimal `json:"starting_price_usd" binding:"required"`
	MinIncrementUSD  decimal.Decimal `json:"min_increment_usd"`
	StartTime        *time.Time      `json:"start_time"`
	DurationSeconds  int64           `json:"duration_seconds" binding:"required"`
}

// PlaceBidRequest is the payload for a local bid, native or token
type PlaceBidRequest struct {
	Bidder string          `json:"bidder" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SendBidRequest is the payload for relaying a bid to a remote auction
type SendBidRequest struct {
	DestinationChain   string          `json:"destination_chain" binding:"required"`
	DestinationAdapter string          `json:"destination_adapter"`
	AuctionID          string          `json:"auction_id" binding:"required"`
	Bidder             string          `json:"bidder" binding:"required"`
	AmountUSD          decimal.Decimal `json:"amount_usd" binding:"required"`
}

// ReleaseAssetRequest names the local recipient a cross-chain winner claims with
type ReleaseAssetRequest struct {
	Recipient string `json:"recipient" binding:"required"`
}

// DepositRequest credits vault funds a later bid or relay fee may draw on
type DepositRequest struct {
	Token   string          `json:"token"`
	Account string          `json:"account" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

// AllowlistRequest toggles one allowlist gate
type AllowlistRequest struct {
	Kind    string `json:"kind" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Allowed bool   `json:"allowed"`
}

// AuctionResponse is the public view of an auction
type AuctionResponse struct {
	ID               string          `json:"id"`
	AssetRef         string          `json:"asset_ref"`
	AssetOwner       string          `json:"asset_owner"`
	PaymentToken     string          `json:"payment_token,omitempty"`
	StartingPriceUSD decimal.Decimal `json:"starting_price_usd"`
	MinIncrementUSD  decimal.Decimal `json:"min_increment_usd"`
	StartTime        time.Time       `json:"start_time"`
	EndTime          time.Time       `json:"end_time"`
	Phase            string          `json:"phase"`
	Ended            bool            `json:"ended"`
	AssetReleased    bool            `json:"asset_released"`

	HighestUSD          decimal.Decimal `json:"highest_usd"`
	HighestBidder       string          `json:"highest_bidder,omitempty"`
	HighestPaymentToken string          `json:"highest_payment_token,omitempty"`
	HighestTokenAmount  decimal.Decimal `json:"highest_token_amount"`
	WinningMessageID    string          `json:"winning_message_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAuctionResponse maps an auction to its public view
func NewAuctionResponse(a domain.Auction, phase domain.Phase) AuctionResponse {
	return AuctionResponse{
		ID:                  a.ID,
		AssetRef:            a.AssetRef.String(),
		AssetOwner:          a.AssetOwner,
		PaymentToken:        a.PaymentToken,
		StartingPriceUSD:    a.StartingPriceUSD,
		MinIncrementUSD:     a.MinIncrementUSD,
		StartTime:           a.StartTime,
		EndTime:             a.EndTime,
		Phase:               string(phase),
		Ended:               a.Ended,
		AssetReleased:       a.AssetReleased,
		HighestUSD:          a.HighestUSD,
		HighestBidder:       a.HighestBidder,
		HighestPaymentToken: a.HighestPaymentToken,
		HighestTokenAmount:  a.HighestTokenAmount,
		WinningMessageID:    a.WinningMessageID,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// CrossChainBidResponse is the public view of a relayed bid record
type CrossChainBidResponse struct {
	MessageID       string          `json:"message_id"`
	AuctionID       string          `json:"auction_id"`
	Bidder          string          `json:"bidder"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	SourceChain     string          `json:"source_chain"`
	IsCurrentWinner bool            `json:"is_current_winner"`
	ReceivedAt      time.Time       `json:"received_at"`
}

// NewCrossChainBidResponse maps a relayed bid record to its public view
func NewCrossChainBidResponse(b *domain.CrossChainBid) CrossChainBidResponse {
	return CrossChainBidResponse{
		MessageID:       b.MessageID,
		AuctionID:       b.AuctionID,
		Bidder:          b.Bidder,
		AmountUSD:       b.AmountUSD,
		SourceChain:     string(b.SourceChain),
		IsCurrentWinner: b.IsCurrentWinner,
		ReceivedAt:      b.ReceivedAt,
	}
}

// WinnerResponse describes the auction winner after finalization
type WinnerResponse struct {
	HasWinner        bool            `json:"has_winner"`
	Bidder           string          `json:"bidder,omitempty"`
	AmountUSD        decimal.Decimal `json:"amount_usd"`
	CrossChain       bool            `json:"cross_chain"`
	SourceChain      string          `json:"source_chain,omitempty"`
	WinningMessageID string          `json:"winning_message_id,omitempty"`
}

// RefundCreditResponse is the public view of a refund credit
type RefundCreditResponse struct {
	ID           int64           `json:"id"`
	AuctionID    string          `json:"auction_id"`
	PaymentToken string          `json:"payment_token,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Withdrawn    bool            `json:"withdrawn"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewRefundCreditResponse maps a refund credit to its public view
func NewRefundCreditResponse(c *domain.RefundCredit) RefundCreditResponse {
	return RefundCreditResponse{
		ID:           c.ID,
		AuctionID:    c.AuctionID,
		PaymentToken: c.PaymentToken,
		Amount:       c.Amount,
		Withdrawn:    c.Withdrawn,
		CreatedAt:    c.CreatedAt,
	}
}

// OutboundMessageResponse is the public view of a relayed outbound bid
type OutboundMessageResponse struct {
	MessageID        string          `json:"message_id"`
	DestinationChain string          `json:"destination_chain"`
	AuctionID        string          `json:"auction_id"`
	Bidder           string          `json:"bidder"`
	AmountUSD        decimal.Decimal `json:"amount_usd"`
	FeePaid          decimal.Decimal `json:"fee_paid"`
	SentAt           time.Time       `json:"sent_at"`
}
