package messaging

import (
	"context"

	"github.com/crosslot/auction-house/internal/domain"
)

// Publisher defines the interface for handing bid messages to the transport.
// Delivery downstream is at-least-once and unordered.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishBid sends a bid message toward the chain hosting the auction
	PublishBid(ctx context.Context, destination domain.Chain, msg *domain.BidMessage) error
	// Close closes the connection
	Close()
}
