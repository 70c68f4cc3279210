package auction_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/mocks"
)

func setupTestRefunds(t *testing.T) (*gomock.Controller, *mocks.MockStore, *mocks.MockTokenVault, auction.RefundService) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	vault := mocks.NewMockTokenVault(ctrl)
	return ctrl, st, vault, auction.NewRefundService(st, vault)
}

func TestRefundService_Pending(t *testing.T) {
	ctrl, st, _, svc := setupTestRefunds(t)
	defer ctrl.Finish()

	ctx := context.Background()
	credits := []*domain.RefundCredit{
		{ID: 1, Payee: testBidderA, Amount: decimal.NewFromInt(5)},
	}
	st.EXPECT().ListRefundCredits(ctx, testBidderA).Return(credits, nil)

	pending, err := svc.Pending(ctx, testBidderA)
	require.NoError(t, err)
	assert.Equal(t, credits, pending)
}

func TestRefundService_Withdraw(t *testing.T) {
	ctrl, st, vault, svc := setupTestRefunds(t)
	defer ctrl.Finish()

	ctx := context.Background()
	amountA := decimal.RequireFromString("0.005")
	amountB := decimal.NewFromInt(20)
	claimed := []*domain.RefundCredit{
		{ID: 1, Payee: testBidderA, PaymentToken: domain.PaymentTokenNative, Amount: amountA},
		{ID: 2, Payee: testBidderA, PaymentToken: testUSDC, Amount: amountB},
	}

	st.EXPECT().ClaimRefundCredits(ctx, testBidderA).Return(claimed, nil)
	vault.EXPECT().Payout(ctx, domain.PaymentTokenNative, testBidderA, amountA).Return(nil)
	vault.EXPECT().Payout(ctx, testUSDC, testBidderA, amountB).Return(nil)

	paid, err := svc.Withdraw(ctx, testBidderA)
	require.NoError(t, err)
	assert.Len(t, paid, 2)
}

func TestRefundService_Withdraw_Nothing(t *testing.T) {
	ctrl, st, _, svc := setupTestRefunds(t)
	defer ctrl.Finish()

	ctx := context.Background()
	st.EXPECT().ClaimRefundCredits(ctx, testBidderA).Return(nil, nil)

	paid, err := svc.Withdraw(ctx, testBidderA)
	require.NoError(t, err)
	assert.Empty(t, paid)
}

func TestRefundService_Withdraw_PayoutFailureReopensCredit(t *testing.T) {
	ctrl, st, vault, svc := setupTestRefunds(t)
	defer ctrl.Finish()

	ctx := context.Background()
	amountA := decimal.RequireFromString("0.005")
	amountB := decimal.NewFromInt(20)
	claimed := []*domain.RefundCredit{
		{ID: 1, Payee: testBidderA, PaymentToken: domain.PaymentTokenNative, Amount: amountA},
		{ID: 2, Payee: testBidderA, PaymentToken: testUSDC, Amount: amountB},
	}

	st.EXPECT().ClaimRefundCredits(ctx, testBidderA).Return(claimed, nil)
	vault.EXPECT().Payout(ctx, domain.PaymentTokenNative, testBidderA, amountA).Return(domain.ErrTransferFailed)
	// the failed credit is reopened so a later withdrawal can retry it,
	// and the remaining credit is still paid out
	st.EXPECT().ReopenRefundCredit(ctx, int64(1)).Return(nil)
	vault.EXPECT().Payout(ctx, testUSDC, testBidderA, amountB).Return(nil)

	paid, err := svc.Withdraw(ctx, testBidderA)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	require.Len(t, paid, 1)
	assert.Equal(t, int64(2), paid[0].ID)
}
