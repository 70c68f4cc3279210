package domain

import "errors"

var (
	// ErrAuctionNotFound is returned when no auction exists for the given id
	ErrAuctionNotFound = errors.New("auction not found")

	// ErrAuctionNotActive is returned when a bid arrives outside the auction window
	ErrAuctionNotActive = errors.New("auction not active")

	// ErrAuctionNotYetEnded is returned when finalize is called before end time
	ErrAuctionNotYetEnded = errors.New("auction not yet ended")

	// ErrAlreadyFinalized is returned on a second finalize call
	ErrAlreadyFinalized = errors.New("auction already finalized")

	// ErrTokenNotAccepted is returned when a token bid targets an auction
	// configured for native payments only
	ErrTokenNotAccepted = errors.New("token not accepted")

	// ErrBidTooLow is returned when a bid does not clear the admission threshold
	ErrBidTooLow = errors.New("bid too low")

	// ErrUnauthorizedSender is returned when a message sender is not allowlisted
	ErrUnauthorizedSender = errors.New("unauthorized sender")

	// ErrUnauthorizedSourceChain is returned when a source chain is not allowlisted
	ErrUnauthorizedSourceChain = errors.New("unauthorized source chain")

	// ErrUnauthorizedDestinationChain is returned when an outbound destination
	// chain is not allowlisted
	ErrUnauthorizedDestinationChain = errors.New("unauthorized destination chain")

	// ErrDuplicateMessage marks a message id that was already applied.
	// The reconciler treats it as a no-op to tolerate at-least-once delivery.
	ErrDuplicateMessage = errors.New("duplicate message")

	// ErrInvalidMessage is returned when a delivered bid message fails
	// structural validation
	ErrInvalidMessage = errors.New("invalid bid message")

	// ErrMessageNotFound is returned when no relayed bid exists for a message id
	ErrMessageNotFound = errors.New("message not found")

	// ErrStalePrice is returned when the oracle cannot provide a fresh conversion
	ErrStalePrice = errors.New("stale or unavailable price")

	// ErrInsufficientAllowance is returned when a token pull exceeds the
	// bidder's prior approval
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrTransferFailed is returned when an escrow transfer cannot complete
	ErrTransferFailed = errors.New("transfer failed")

	// ErrNotCrossChainWinner is returned when a cross-chain asset release is
	// requested but the winner is local or absent
	ErrNotCrossChainWinner = errors.New("winner is not a cross-chain bidder")
)
