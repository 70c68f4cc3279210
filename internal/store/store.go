package store

import (
	"context"

	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAuction persists a newly created auction
	CreateAuction(ctx context.Context, auction *domain.Auction) error
	// GetAuction retrieves an auction by id, domain.ErrAuctionNotFound when absent
	GetAuction(ctx context.Context, id string) (*domain.Auction, error)
	// ListAuctions retrieves all auctions ordered by creation time
	ListAuctions(ctx context.Context) ([]*domain.Auction, error)
	// SaveAdmission atomically persists the auction state after a bid was
	// admitted, together with the cross-chain bid record (when the bid came
	// over the relay) and the refund credit owed to the displaced bidder
	SaveAdmission(ctx context.Context, auction *domain.Auction, bid *domain.CrossChainBid, credit *domain.RefundCredit) error
	// SaveFinalization atomically persists the terminal auction state
	SaveFinalization(ctx context.Context, auction *domain.Auction) error
	// MarkAssetReleased records that the auctioned asset left escrow
	MarkAssetReleased(ctx context.Context, auctionID string) error
	// MarkProceedsPaid records that the sale proceeds reached the asset owner
	MarkProceedsPaid(ctx context.Context, auctionID string) error

	// HasCrossChainBid reports whether a message id has been seen before
	HasCrossChainBid(ctx context.Context, messageID string) (bool, error)
	// RecordCrossChainBid persists a relayed bid that did not win at arrival
	RecordCrossChainBid(ctx context.Context, bid *domain.CrossChainBid) error
	// GetCrossChainBid retrieves a relayed bid by message id, domain.ErrMessageNotFound when absent
	GetCrossChainBid(ctx context.Context, messageID string) (*domain.CrossChainBid, error)
	// ListCrossChainBidIDs retrieves the message ids recorded for an auction in arrival order
	ListCrossChainBidIDs(ctx context.Context, auctionID string) ([]string, error)

	// IsAllowed reports the state of an allowlist gate, absent entries are denied
	IsAllowed(ctx context.Context, kind domain.AllowlistKind, value string) (bool, error)
	// SetAllowed toggles an allowlist gate, creating the entry when absent
	SetAllowed(ctx context.Context, kind domain.AllowlistKind, value string, allowed bool) error
	// ListAllowlist retrieves all allowlist entries of a kind
	ListAllowlist(ctx context.Context, kind domain.AllowlistKind) ([]*schema.AllowlistEntry, error)

	// RecordOutboundMessage persists a bid sent to a remote auction
	RecordOutboundMessage(ctx context.Context, msg *domain.OutboundMessage) error
	// ListOutboundMessages retrieves the outbound messages recorded for a remote auction
	ListOutboundMessages(ctx context.Context, auctionID string) ([]*domain.OutboundMessage, error)

	// ListRefundCredits retrieves the open refund credits owed to a payee
	ListRefundCredits(ctx context.Context, payee string) ([]*domain.RefundCredit, error)
	// ClaimRefundCredits marks all open credits of a payee withdrawn and
	// returns them, empty when nothing is owed
	ClaimRefundCredits(ctx context.Context, payee string) ([]*domain.RefundCredit, error)
	// ReopenRefundCredit clears the withdrawn flag after a failed payout
	ReopenRefundCredit(ctx context.Context, id int64) error
}
