package auction

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/store"
)

// RefundService pays out the credits owed to outbid bidders. Refunds are
// pull-based, the payee asks for their balance instead of the engine pushing
// funds at displacement time.
//
//go:generate mockgen -source=refunds.go -destination=../mocks/refunds.go -package=mocks -mock_names=RefundService=MockRefundService
type RefundService interface {
	// Pending lists the open credits owed to a payee
	Pending(ctx context.Context, payee string) ([]*domain.RefundCredit, error)
	// Withdraw claims and pays out every open credit of a payee. A credit
	// whose payout fails is reopened for a later attempt; the remaining
	// credits are still tried and the failures come back as the error
	// alongside the credits that were paid.
	Withdraw(ctx context.Context, payee string) ([]*domain.RefundCredit, error)
}

type refundService struct {
	store store.Store
	vault escrow.TokenVault
}

// NewRefundService creates a new refund service
func NewRefundService(st store.Store, vault escrow.TokenVault) RefundService {
	return &refundService{store: st, vault: vault}
}

func (r *refundService) Pending(ctx context.Context, payee string) ([]*domain.RefundCredit, error) {
	return r.store.ListRefundCredits(ctx, domain.NormalizeAddress(payee))
}

func (r *refundService) Withdraw(ctx context.Context, payee string) ([]*domain.RefundCredit, error) {
	payee = domain.NormalizeAddress(payee)

	claimed, err := r.store.ClaimRefundCredits(ctx, payee)
	if err != nil {
		return nil, err
	}

	var failures []error
	paid := make([]*domain.RefundCredit, 0, len(claimed))
	for _, credit := range claimed {
		if err := r.vault.Payout(ctx, credit.PaymentToken, payee, credit.Amount); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.Int64("credit_id", credit.ID),
				zap.String("payee", payee))
			failures = append(failures, fmt.Errorf("credit %d: %w", credit.ID, err))
			if reopenErr := r.store.ReopenRefundCredit(ctx, credit.ID); reopenErr != nil {
				logger.ErrorCtx(ctx, reopenErr, zap.Int64("credit_id", credit.ID))
				failures = append(failures, fmt.Errorf("reopen credit %d: %w", credit.ID, reopenErr))
			}
			continue
		}
		paid = append(paid, credit)
	}

	if len(paid) > 0 {
		logger.InfoCtx(ctx, "refunds withdrawn",
			zap.String("payee", payee),
			zap.Int("count", len(paid)))
	}
	return paid, errors.Join(failures...)
}
