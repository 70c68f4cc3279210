package oracle

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/crosslot/auction-house/internal/domain"
)

type fixedOracle struct {
	rate decimal.Decimal
}

// NewFixedOracle creates a PriceOracle with a constant native/USD rate.
// Used for local runs and tests where no feed is reachable.
func NewFixedOracle(rate decimal.Decimal) PriceOracle {
	return &fixedOracle{rate: rate}
}

func (o *fixedOracle) ConvertNativeToUSD(_ context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !o.rate.IsPositive() {
		return decimal.Zero, domain.ErrStalePrice
	}
	return amount.Mul(o.rate).Round(domain.USD_DECIMALS), nil
}
