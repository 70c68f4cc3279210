package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundCredit represents the refund_credits table - escrowed funds owed back
// to an outbid local bidder, withdrawn by the payee rather than pushed
type RefundCredit struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AuctionID references the auction the displaced bid was placed on
	AuctionID string `gorm:"column:auction_id;not null;type:text;index"`
	// Payee is the address entitled to the refund
	Payee string `gorm:"column:payee;not null;type:text;index:idx_refund_credits_payee_open"`
	// PaymentToken is the token the funds were escrowed in, empty for native
	PaymentToken string `gorm:"column:payment_token;not null;default:'';type:text"`
	// Amount is the escrowed amount owed back
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,6)"`
	// Withdrawn is set once the payee has pulled the funds
	Withdrawn bool `gorm:"column:withdrawn;not null;default:false;index:idx_refund_credits_payee_open"`
	// CreatedAt is when the credit was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// WithdrawnAt is when the payee pulled the funds, nil while open
	WithdrawnAt *time.Time `gorm:"column:withdrawn_at"`
}

// TableName specifies the table name for GORM
func (RefundCredit) TableName() string {
	return "refund_credits"
}
