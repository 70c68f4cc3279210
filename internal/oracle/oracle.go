package oracle

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceOracle converts an amount of the home chain's native currency into the
// USD unit of account all bids are compared in. Conversion is a pure read;
// implementations must not mutate auction state.
//
//go:generate mockgen -source=oracle.go -destination=../mocks/oracle.go -package=mocks -mock_names=PriceOracle=MockPriceOracle
type PriceOracle interface {
	// ConvertNativeToUSD converts a native-currency amount (in whole coin
	// units, e.g. ETH) to USD. Returns domain.ErrStalePrice when no fresh
	// price is available.
	ConvertNativeToUSD(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
}
