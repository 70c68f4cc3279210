package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrossChainBid represents the cross_chain_bids table - one row per distinct
// relayed bid message, recorded whether or not the bid won at arrival
type CrossChainBid struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MessageID is the relayer-assigned message id, globally unique across redeliveries
	MessageID string `gorm:"column:message_id;not null;uniqueIndex;type:text"`
	// AuctionID references the auction the bid was placed on
	AuctionID string `gorm:"column:auction_id;not null;type:text;index:idx_cross_chain_bids_auction"`
	// Bidder is the bidder address on the source chain
	Bidder string `gorm:"column:bidder;not null;type:text"`
	// AmountUSD is the USD value carried by the message
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(38,6)"`
	// SourceChain is the CAIP-2 id of the chain the bid originated on
	SourceChain string `gorm:"column:source_chain;not null;type:text"`
	// CurrentWinner marks the bid currently leading the auction, at most one per auction
	CurrentWinner bool `gorm:"column:current_winner;not null;default:false"`
	// ReceivedAt is when the message was first admitted or recorded
	ReceivedAt time.Time `gorm:"column:received_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (CrossChainBid) TableName() string {
	return "cross_chain_bids"
}
