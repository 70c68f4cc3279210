package oracle

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/crosslot/auction-house/internal/adapter"
	"github.com/crosslot/auction-house/internal/domain"
)

// latestRoundData/decimals of a Chainlink AggregatorV3Interface feed.
const aggregatorABIJSON = `[
	{"inputs":[],"name":"latestRoundData","outputs":[{"name":"roundId","type":"uint80"},{"name":"answer","type":"int256"},{"name":"startedAt","type":"uint256"},{"name":"updatedAt","type":"uint256"},{"name":"answeredInRound","type":"uint80"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

// Config holds the configuration for the Chainlink price oracle
type Config struct {
	// FeedAddress is the native/USD aggregator contract address
	FeedAddress string
	// StaleAfter rejects answers older than this window
	StaleAfter time.Duration
}

type chainlinkOracle struct {
	client adapter.EthClient
	clock  adapter.Clock
	config Config
	abi    abi.ABI
}

// NewChainlinkOracle creates a PriceOracle backed by a Chainlink
// AggregatorV3 feed for the home chain's native currency.
func NewChainlinkOracle(client adapter.EthClient, clock adapter.Clock, cfg Config) (PriceOracle, error) {
	parsed, err := abi.JSON(strings.NewReader(aggregatorABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse aggregator ABI: %w", err)
	}

	return &chainlinkOracle{
		client: client,
		clock:  clock,
		config: cfg,
		abi:    parsed,
	}, nil
}

// ConvertNativeToUSD converts a native-currency amount to USD at the feed's
// latest answer.
func (o *chainlinkOracle) ConvertNativeToUSD(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	answer, feedDecimals, updatedAt, err := o.latestRoundData(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if answer.Sign() <= 0 {
		return decimal.Zero, domain.ErrStalePrice
	}
	if o.config.StaleAfter > 0 && o.clock.Since(updatedAt) > o.config.StaleAfter {
		return decimal.Zero, domain.ErrStalePrice
	}

	price := decimal.NewFromBigInt(answer, -int32(feedDecimals))
	return amount.Mul(price).Round(domain.USD_DECIMALS), nil
}

func (o *chainlinkOracle) latestRoundData(ctx context.Context) (*big.Int, uint8, time.Time, error) {
	feedAddr := common.HexToAddress(o.config.FeedAddress)

	data, err := o.abi.Pack("latestRoundData")
	if err != nil {
		return nil, 0, time.Time{}, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := o.client.CallContract(ctx, ethereum.CallMsg{
		To:   &feedAddr,
		Data: data,
	}, nil)
	if err != nil {
		return nil, 0, time.Time{}, fmt.Errorf("failed to call aggregator: %w", err)
	}

	values, err := o.abi.Unpack("latestRoundData", result)
	if err != nil {
		return nil, 0, time.Time{}, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(values) != 5 {
		return nil, 0, time.Time{}, fmt.Errorf("unexpected latestRoundData result length: %d", len(values))
	}

	answer, ok := values[1].(*big.Int)
	if !ok {
		return nil, 0, time.Time{}, fmt.Errorf("unexpected answer type %T", values[1])
	}
	updatedAtBig, ok := values[3].(*big.Int)
	if !ok {
		return nil, 0, time.Time{}, fmt.Errorf("unexpected updatedAt type %T", values[3])
	}

	feedDecimals, err := o.decimals(ctx, feedAddr)
	if err != nil {
		return nil, 0, time.Time{}, err
	}

	return answer, feedDecimals, time.Unix(updatedAtBig.Int64(), 0), nil
}

func (o *chainlinkOracle) decimals(ctx context.Context, feedAddr common.Address) (uint8, error) {
	data, err := o.abi.Pack("decimals")
	if err != nil {
		return 0, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := o.client.CallContract(ctx, ethereum.CallMsg{
		To:   &feedAddr,
		Data: data,
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call aggregator: %w", err)
	}

	var feedDecimals uint8
	if err := o.abi.UnpackIntoInterface(&feedDecimals, "decimals", result); err != nil {
		return 0, fmt.Errorf("failed to unpack result: %w", err)
	}

	return feedDecimals, nil
}
