package escrow

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/crosslot/auction-house/internal/domain"
)

// AssetRegistry is the custody boundary for the auctioned asset. The factory
// holds the asset when an auction is created and the engine releases it at
// settlement, either to the winner or back to the owner.
//
//go:generate mockgen -source=escrow.go -destination=../mocks/escrow.go -package=mocks -mock_names=AssetRegistry=MockAssetRegistry,TokenVault=MockTokenVault
type AssetRegistry interface {
	// Hold takes custody of the asset from its owner
	Hold(ctx context.Context, asset domain.AssetRef, from string) error
	// Release transfers the asset out of custody to the recipient
	Release(ctx context.Context, asset domain.AssetRef, to string) error
}

// TokenVault is the custody boundary for bid funds. The empty token
// (domain.PaymentTokenNative) denotes the chain's native currency.
type TokenVault interface {
	// Pull transfers amount of token from the payer into escrow. Token pulls
	// require prior approval and fail with domain.ErrInsufficientAllowance
	// when the approval does not cover the amount.
	Pull(ctx context.Context, token, payer string, amount decimal.Decimal) error
	// Payout releases escrowed funds to the recipient
	Payout(ctx context.Context, token, recipient string, amount decimal.Decimal) error
}

// Depositor credits funds into the vault ahead of a Pull. Token bids and
// relay fees draw on deposited balances; native pulls need no deposit.
type Depositor interface {
	Deposit(ctx context.Context, token, account string, amount decimal.Decimal) error
}
