package oracle_test

import (
	"context"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/mocks"
	"github.com/crosslot/auction-house/internal/oracle"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testFeedAddress = "0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"

// aggregatorABI mirrors the AggregatorV3Interface methods the oracle calls,
// used to encode the mocked contract responses
const aggregatorABI = `[
	{"inputs":[],"name":"latestRoundData","outputs":[{"name":"roundId","type":"uint80"},{"name":"answer","type":"int256"},{"name":"startedAt","type":"uint256"},{"name":"updatedAt","type":"uint256"},{"name":"answeredInRound","type":"uint80"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

func packRoundData(t *testing.T, answer *big.Int, updatedAt time.Time) []byte {
	parsed, err := abi.JSON(strings.NewReader(aggregatorABI))
	require.NoError(t, err)

	data, err := parsed.Methods["latestRoundData"].Outputs.Pack(
		big.NewInt(1),
		answer,
		big.NewInt(updatedAt.Unix()),
		big.NewInt(updatedAt.Unix()),
		big.NewInt(1),
	)
	require.NoError(t, err)
	return data
}

func packDecimals(t *testing.T, feedDecimals uint8) []byte {
	parsed, err := abi.JSON(strings.NewReader(aggregatorABI))
	require.NoError(t, err)

	data, err := parsed.Methods["decimals"].Outputs.Pack(feedDecimals)
	require.NoError(t, err)
	return data
}

func setupChainlinkOracle(t *testing.T) (*gomock.Controller, *mocks.MockEthClient, *mocks.MockClock, oracle.PriceOracle) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	o, err := oracle.NewChainlinkOracle(client, clock, oracle.Config{
		FeedAddress: testFeedAddress,
		StaleAfter:  time.Hour,
	})
	require.NoError(t, err)

	return ctrl, client, clock, o
}

func TestChainlinkOracle_ConvertNativeToUSD(t *testing.T) {
	ctrl, client, clock, o := setupChainlinkOracle(t)
	defer ctrl.Finish()

	ctx := context.Background()
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// 2000.00000000 USD per native unit at 8 feed decimals
	answer := big.NewInt(200_000_000_000)
	gomock.InOrder(
		client.EXPECT().
			CallContract(ctx, gomock.Any(), nil).
			Return(packRoundData(t, answer, updatedAt), nil),
		client.EXPECT().
			CallContract(ctx, gomock.Any(), nil).
			Return(packDecimals(t, 8), nil),
	)
	clock.EXPECT().Since(gomock.Any()).Return(10 * time.Minute)

	usd, err := o.ConvertNativeToUSD(ctx, decimal.RequireFromString("0.005"))
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(10)), "got %s", usd)
}

func TestChainlinkOracle_StalePrice(t *testing.T) {
	ctrl, client, clock, o := setupChainlinkOracle(t)
	defer ctrl.Finish()

	ctx := context.Background()
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	gomock.InOrder(
		client.EXPECT().
			CallContract(ctx, gomock.Any(), nil).
			Return(packRoundData(t, big.NewInt(200_000_000_000), updatedAt), nil),
		client.EXPECT().
			CallContract(ctx, gomock.Any(), nil).
			Return(packDecimals(t, 8), nil),
	)
	// the answer is older than the staleness window
	clock.EXPECT().Since(gomock.Any()).Return(2 * time.Hour)

	_, err := o.ConvertNativeToUSD(ctx, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrStalePrice)
}

func TestChainlinkOracle_NonPositiveAnswer(t *testing.T) {
	ctrl, client, _, o := setupChainlinkOracle(t)
	defer ctrl.Finish()

	ctx := context.Background()
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	gomock.InOrder(
		client.EXPECT().
			CallContract(ctx, gomock.Any(), nil).
			Return(packRoundData(t, big.NewInt(0), updatedAt), nil),
		client.EXPECT().
			CallContract(ctx, gomock.Any(), nil).
			Return(packDecimals(t, 8), nil),
	)

	_, err := o.ConvertNativeToUSD(ctx, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrStalePrice)
}

func TestChainlinkOracle_CallError(t *testing.T) {
	ctrl, client, _, o := setupChainlinkOracle(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client.EXPECT().
		CallContract(ctx, gomock.Any(), nil).
		Return(nil, assert.AnError)

	_, err := o.ConvertNativeToUSD(ctx, decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestFixedOracle(t *testing.T) {
	o := oracle.NewFixedOracle(decimal.NewFromInt(2000))

	usd, err := o.ConvertNativeToUSD(context.Background(), decimal.RequireFromString("0.005"))
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(10)))
}

func TestFixedOracle_NoRate(t *testing.T) {
	o := oracle.NewFixedOracle(decimal.Zero)

	_, err := o.ConvertNativeToUSD(context.Background(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrStalePrice)
}
