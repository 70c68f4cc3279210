package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutboundMessage represents the outbound_messages table - a record of every
// bid sent out to a remote auction, kept for fee accounting and audit
type OutboundMessage struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MessageID is the ULID assigned to the message before publishing
	MessageID string `gorm:"column:message_id;not null;uniqueIndex;type:text"`
	// AuctionID is the remote auction the bid targets
	AuctionID string `gorm:"column:auction_id;not null;type:text;index"`
	// DestinationChain is the CAIP-2 id of the chain hosting the auction
	DestinationChain string `gorm:"column:destination_chain;not null;type:text"`
	// DestinationAdapter is the remote endpoint the message was addressed to
	DestinationAdapter string `gorm:"column:destination_adapter;not null;type:text"`
	// Bidder is the local address the bid is attributed to
	Bidder string `gorm:"column:bidder;not null;type:text"`
	// AmountUSD is the USD value carried by the message
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(38,6)"`
	// FeePaid is the relay fee collected before publishing
	FeePaid decimal.Decimal `gorm:"column:fee_paid;not null;type:numeric(38,6)"`
	// SentAt is when the message was handed to the transport
	SentAt time.Time `gorm:"column:sent_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (OutboundMessage) TableName() string {
	return "outbound_messages"
}
