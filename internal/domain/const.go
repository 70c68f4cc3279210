package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// USD_DECIMALS is the scale USD amounts are compared at. All bids are
	// normalized to this scale before arbitration.
	USD_DECIMALS = 6
)
