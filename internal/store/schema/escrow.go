package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// EscrowedAsset represents the escrowed_assets table - the custody record of
// one auctionable asset. A row is created the first time the asset is held.
type EscrowedAsset struct {
	// AssetRef is the canonical reference of the asset in format chain:contract:tokenNumber
	AssetRef string `gorm:"column:asset_ref;primaryKey;type:text"`
	// Owner is the address custody was taken from, or released to
	Owner string `gorm:"column:owner;not null;type:text"`
	// Held reports whether the asset is currently in escrow
	Held bool `gorm:"column:held;not null;default:false"`
	// UpdatedAt is the timestamp of the last custody change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (EscrowedAsset) TableName() string {
	return "escrowed_assets"
}

// VaultAccount represents the vault_accounts table - per-account balances in
// one token. Available is deposited and not yet pulled, Escrowed backs bids.
type VaultAccount struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Token is the token contract address, empty for the native currency
	Token string `gorm:"column:token;not null;default:'';uniqueIndex:idx_vault_accounts_token_account"`
	// Account is the address the balances belong to
	Account string `gorm:"column:account;not null;type:text;uniqueIndex:idx_vault_accounts_token_account"`
	// Available is the deposited amount a Pull may consume
	Available decimal.Decimal `gorm:"column:available;not null;type:numeric(38,6)"`
	// Escrowed is the amount currently locked behind bids
	Escrowed decimal.Decimal `gorm:"column:escrowed;not null;type:numeric(38,6)"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (VaultAccount) TableName() string {
	return "vault_accounts"
}

// VaultPool represents the vault_pools table - the aggregate escrow balance
// per token that payouts draw from
type VaultPool struct {
	// Token is the token contract address, empty for the native currency
	Token string `gorm:"column:token;primaryKey;default:'';type:text"`
	// Balance is the total amount currently held across all accounts
	Balance decimal.Decimal `gorm:"column:balance;not null;type:numeric(38,6)"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (VaultPool) TableName() string {
	return "vault_pools"
}
