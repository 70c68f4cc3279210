package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Auction represents the auctions table - one row per sealed-duration auction
type Auction struct {
	// ID is the ULID assigned when the auction is created
	ID string `gorm:"column:id;primaryKey;type:text"`
	// AssetRef is the canonical reference of the escrowed asset in format chain:contract:tokenNumber
	AssetRef string `gorm:"column:asset_ref;not null;uniqueIndex;type:text"`
	// AssetOwner is the address that consigned the asset and receives the proceeds
	AssetOwner string `gorm:"column:asset_owner;not null;type:text;index"`
	// PaymentToken is the accepted token contract address, empty for native-only auctions
	PaymentToken string `gorm:"column:payment_token;not null;default:'';type:text"`
	// StartingPriceUSD is the minimum admissible first bid
	StartingPriceUSD decimal.Decimal `gorm:"column:starting_price_usd;not null;type:numeric(38,6)"`
	// MinIncrementUSD is the amount a new bid must exceed the current highest by
	MinIncrementUSD decimal.Decimal `gorm:"column:min_increment_usd;not null;type:numeric(38,6)"`
	// StartTime is when bidding opens
	StartTime time.Time `gorm:"column:start_time;not null"`
	// EndTime is when bidding closes, bids at or after this instant are rejected
	EndTime time.Time `gorm:"column:end_time;not null;index"`
	// Ended is set once by finalization and never cleared
	Ended bool `gorm:"column:ended;not null;default:false"`
	// AssetReleased records that the asset left escrow at settlement
	AssetReleased bool `gorm:"column:asset_released;not null;default:false"`
	// ProceedsPaid records that the sale proceeds were paid to the asset owner
	ProceedsPaid bool `gorm:"column:proceeds_paid;not null;default:false"`
	// HighestUSD is the USD value of the current highest bid, zero when no bid admitted
	HighestUSD decimal.Decimal `gorm:"column:highest_usd;not null;type:numeric(38,6)"`
	// HighestBidder is the address of the current highest bidder, empty when no bid admitted
	HighestBidder string `gorm:"column:highest_bidder;not null;default:'';type:text"`
	// HighestPaymentToken is the token the highest local bid was paid in, empty for native
	HighestPaymentToken string `gorm:"column:highest_payment_token;not null;default:'';type:text"`
	// HighestTokenAmount is the escrowed amount backing the highest local bid
	HighestTokenAmount decimal.Decimal `gorm:"column:highest_token_amount;not null;type:numeric(38,6)"`
	// WinningMessageID is the message id of the winning cross-chain bid, empty when a local bid leads
	WinningMessageID string `gorm:"column:winning_message_id;not null;default:'';type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last state change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (Auction) TableName() string {
	return "auctions"
}
