package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/api/rest/dto"
	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/reconciler"
	"github.com/crosslot/auction-house/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateAuction opens a new auction and escrows its asset
	// POST /api/v1/auctions
	CreateAuction(c *gin.Context)

	// ListAuctions retrieves all known auctions
	// GET /api/v1/auctions
	ListAuctions(c *gin.Context)

	// GetAuction retrieves a single auction by id
	// GET /api/v1/auctions/:id
	GetAuction(c *gin.Context)

	// PlaceBidNative places a bid denominated in the native currency
	// POST /api/v1/auctions/:id/bids/native
	PlaceBidNative(c *gin.Context)

	// PlaceBidToken places a bid paid in the auction's configured token
	// POST /api/v1/auctions/:id/bids/token
	PlaceBidToken(c *gin.Context)

	// FinalizeAuction ends an auction whose window has elapsed
	// POST /api/v1/auctions/:id/finalize
	FinalizeAuction(c *gin.Context)

	// ReleaseAsset hands the asset to the cross-chain winner's local recipient
	// POST /api/v1/auctions/:id/release
	ReleaseAsset(c *gin.Context)

	// GetWinner reports the winner of a finalized auction
	// GET /api/v1/auctions/:id/winner
	GetWinner(c *gin.Context)

	// ListCrossChainBids retrieves the relayed bid records of an auction
	// GET /api/v1/auctions/:id/cross-chain-bids
	ListCrossChainBids(c *gin.Context)

	// GetCrossChainBid retrieves one relayed bid record by message id
	// GET /api/v1/auctions/:id/cross-chain-bids/:message_id
	GetCrossChainBid(c *gin.Context)

	// SendBid relays a bid from this chain to a remote auction
	// POST /api/v1/relay/bids
	SendBid(c *gin.Context)

	// ListOutboundMessages retrieves the outbound bids sent to a remote auction
	// GET /api/v1/relay/messages?auction_id=<id>
	ListOutboundMessages(c *gin.Context)

	// ListRefunds retrieves the open refund credits of an address
	// GET /api/v1/refunds/:address
	ListRefunds(c *gin.Context)

	// WithdrawRefunds pays out every open refund credit of an address
	// POST /api/v1/refunds/:address/withdraw
	WithdrawRefunds(c *gin.Context)

	// DepositFunds credits vault funds for token bids and relay fees
	// POST /api/v1/escrow/deposits
	DepositFunds(c *gin.Context)

	// SetAllowlistEntry toggles an allowlist gate
	// PUT /api/v1/allowlist
	SetAllowlistEntry(c *gin.Context)

	// ListAllowlist retrieves the entries of one allowlist kind
	// GET /api/v1/allowlist/:kind
	ListAllowlist(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	factory    auction.Factory
	store      store.Store
	reconciler reconciler.Reconciler
	refunds    auction.RefundService
	depositor  escrow.Depositor
}

// NewHandler creates a new REST API handler
func NewHandler(
	factory auction.Factory,
	st store.Store,
	rec reconciler.Reconciler,
	refunds auction.RefundService,
	depositor escrow.Depositor,
) Handler {
	return &handler{
		factory:    factory,
		store:      st,
		reconciler: rec,
		refunds:    refunds,
		depositor:  depositor,
	}
}

// CreateAuction opens a new auction and escrows its asset
func (h *handler) CreateAuction(c *gin.Context) {
	var req dto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	params := auction.CreateParams{
		AssetRef:         domain.AssetRef(req.AssetRef),
		AssetOwner:       req.AssetOwner,
		PaymentToken:     req.PaymentToken,
		StartingPriceUSD: req.StartingPriceUSD,
		MinIncrementUSD:  req.MinIncrementUSD,
		Duration:         time.Duration(req.DurationSeconds) * time.Second,
	}
	if req.StartTime != nil {
		params.StartTime = *req.StartTime
	}

	created, err := h.factory.CreateAuction(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrTransferFailed) {
			respondConflict(c, "Asset could not be escrowed", err.Error())
			return
		}
		respondBadRequest(c, "Failed to create auction", err.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuctionResponse(created, created.PhaseAt(time.Now())))
}

// ListAuctions retrieves all known auctions
func (h *handler) ListAuctions(c *gin.Context) {
	auctions := h.factory.List()

	now := time.Now()
	out := make([]dto.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, dto.NewAuctionResponse(a, a.PhaseAt(now)))
	}
	c.JSON(http.StatusOK, gin.H{"auctions": out})
}

// GetAuction retrieves a single auction by id
func (h *handler) GetAuction(c *gin.Context) {
	eng, ok := h.engineOr404(c)
	if !ok {
		return
	}

	a := eng.Auction()
	c.JSON(http.StatusOK, dto.NewAuctionResponse(a, eng.Phase()))
}

// PlaceBidNative places a bid denominated in the native currency
func (h *handler) PlaceBidNative(c *gin.Context) {
	h.placeLocalBid(c, true)
}

// PlaceBidToken places a bid paid in the auction's configured token
func (h *handler) PlaceBidToken(c *gin.Context) {
	h.placeLocalBid(c, false)
}

func (h *handler) placeLocalBid(c *gin.Context, native bool) {
	eng, ok := h.engineOr404(c)
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var (
		a   domain.Auction
		err error
	)
	if native {
		a, err = eng.PlaceBidNative(c.Request.Context(), req.Bidder, req.Amount)
	} else {
		a, err = eng.PlaceBidToken(c.Request.Context(), req.Bidder, req.Amount)
	}
	if err != nil {
		h.respondBidError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuctionResponse(a, eng.Phase()))
}

func (h *handler) respondBidError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAuctionNotActive):
		respondConflict(c, "Auction is not accepting bids", err.Error())
	case errors.Is(err, domain.ErrBidTooLow):
		respondBadRequest(c, "Bid is below the admission threshold", err.Error())
	case errors.Is(err, domain.ErrTokenNotAccepted):
		respondBadRequest(c, "Auction does not accept token bids", err.Error())
	case errors.Is(err, domain.ErrInsufficientAllowance):
		respondBadRequest(c, "Token allowance does not cover the bid", err.Error())
	case errors.Is(err, domain.ErrStalePrice):
		respondConflict(c, "Price feed is unavailable", err.Error())
	case errors.Is(err, domain.ErrTransferFailed):
		respondConflict(c, "Funds could not be escrowed", err.Error())
	default:
		respondInternalError(c, err, "Failed to place bid")
	}
}

// FinalizeAuction ends an auction whose window has elapsed
func (h *handler) FinalizeAuction(c *gin.Context) {
	eng, ok := h.engineOr404(c)
	if !ok {
		return
	}

	a, err := eng.Finalize(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuctionNotYetEnded):
			respondConflict(c, "Auction window has not elapsed", err.Error())
		case errors.Is(err, domain.ErrAlreadyFinalized):
			respondConflict(c, "Auction was already finalized", err.Error())
		default:
			respondInternalError(c, err, "Failed to finalize auction",
				zap.String("auction_id", c.Param("id")))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewAuctionResponse(a, domain.PhaseEnded))
}

// ReleaseAsset hands the asset to the cross-chain winner's local recipient
func (h *handler) ReleaseAsset(c *gin.Context) {
	eng, ok := h.engineOr404(c)
	if !ok {
		return
	}

	var req dto.ReleaseAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := eng.ReleaseAssetToCrossChainWinner(c.Request.Context(), req.Recipient); err != nil {
		switch {
		case errors.Is(err, domain.ErrAuctionNotYetEnded):
			respondConflict(c, "Auction is not finalized", err.Error())
		case errors.Is(err, domain.ErrNotCrossChainWinner):
			respondConflict(c, "Winner is not a cross-chain bidder", err.Error())
		default:
			respondInternalError(c, err, "Failed to release asset",
				zap.String("auction_id", c.Param("id")))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWinner reports the winner of a finalized auction
func (h *handler) GetWinner(c *gin.Context) {
	eng, ok := h.engineOr404(c)
	if !ok {
		return
	}

	a := eng.Auction()
	resp := dto.WinnerResponse{
		HasWinner:  a.HasBid(),
		Bidder:     a.HighestBidder,
		AmountUSD:  a.HighestUSD,
		CrossChain: a.CrossChainWinner(),
	}
	if a.CrossChainWinner() {
		resp.WinningMessageID = a.WinningMessageID
		bid, err := h.store.GetCrossChainBid(c.Request.Context(), a.WinningMessageID)
		if err != nil {
			respondInternalError(c, err, "Failed to load winning bid",
				zap.String("auction_id", a.ID))
			return
		}
		resp.SourceChain = string(bid.SourceChain)
	}

	c.JSON(http.StatusOK, resp)
}

// ListCrossChainBids retrieves the relayed bid records of an auction
func (h *handler) ListCrossChainBids(c *gin.Context) {
	if _, ok := h.engineOr404(c); !ok {
		return
	}

	ids, err := h.store.ListCrossChainBidIDs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "Failed to list cross-chain bids",
			zap.String("auction_id", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message_ids": ids})
}

// GetCrossChainBid retrieves one relayed bid record by message id
func (h *handler) GetCrossChainBid(c *gin.Context) {
	bid, err := h.store.GetCrossChainBid(c.Request.Context(), c.Param("message_id"))
	if err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			respondNotFound(c, "Cross-chain bid not found")
			return
		}
		respondInternalError(c, err, "Failed to load cross-chain bid",
			zap.String("message_id", c.Param("message_id")))
		return
	}
	if bid.AuctionID != c.Param("id") {
		respondNotFound(c, "Cross-chain bid not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewCrossChainBidResponse(bid))
}

// SendBid relays a bid from this chain to a remote auction
func (h *handler) SendBid(c *gin.Context) {
	var req dto.SendBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	record, err := h.reconciler.SendBid(c.Request.Context(), domain.OutboundBid{
		DestinationChain:   domain.Chain(req.DestinationChain),
		DestinationAdapter: req.DestinationAdapter,
		AuctionID:          req.AuctionID,
		Bidder:             req.Bidder,
		AmountUSD:          req.AmountUSD,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorizedDestinationChain):
			respondForbidden(c, "Destination chain is not allowlisted", err.Error())
		case errors.Is(err, domain.ErrUnauthorizedSender):
			respondForbidden(c, "Relay sender is not allowlisted", err.Error())
		case errors.Is(err, domain.ErrInsufficientAllowance),
			errors.Is(err, domain.ErrBidTooLow):
			respondBadRequest(c, "Bid cannot be relayed", err.Error())
		default:
			respondInternalError(c, err, "Failed to relay bid")
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.OutboundMessageResponse{
		MessageID:        record.MessageID,
		DestinationChain: string(record.DestinationChain),
		AuctionID:        record.AuctionID,
		Bidder:           record.Bidder,
		AmountUSD:        record.AmountUSD,
		FeePaid:          record.FeePaid,
		SentAt:           record.SentAt,
	})
}

// ListOutboundMessages retrieves the outbound bids sent to a remote auction
func (h *handler) ListOutboundMessages(c *gin.Context) {
	auctionID := c.Query("auction_id")
	if auctionID == "" {
		respondBadRequest(c, "auction_id query parameter is required")
		return
	}

	msgs, err := h.store.ListOutboundMessages(c.Request.Context(), auctionID)
	if err != nil {
		respondInternalError(c, err, "Failed to list outbound messages",
			zap.String("auction_id", auctionID))
		return
	}

	out := make([]dto.OutboundMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, dto.OutboundMessageResponse{
			MessageID:        msg.MessageID,
			DestinationChain: string(msg.DestinationChain),
			AuctionID:        msg.AuctionID,
			Bidder:           msg.Bidder,
			AmountUSD:        msg.AmountUSD,
			FeePaid:          msg.FeePaid,
			SentAt:           msg.SentAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

// ListRefunds retrieves the open refund credits of an address
func (h *handler) ListRefunds(c *gin.Context) {
	credits, err := h.refunds.Pending(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondInternalError(c, err, "Failed to list refunds",
			zap.String("address", c.Param("address")))
		return
	}

	out := make([]dto.RefundCreditResponse, 0, len(credits))
	for _, credit := range credits {
		out = append(out, dto.NewRefundCreditResponse(credit))
	}
	c.JSON(http.StatusOK, gin.H{"refunds": out})
}

// WithdrawRefunds pays out every open refund credit of an address
func (h *handler) WithdrawRefunds(c *gin.Context) {
	paid, err := h.refunds.Withdraw(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondInternalError(c, err, "Failed to withdraw refunds",
			zap.String("address", c.Param("address")))
		return
	}

	out := make([]dto.RefundCreditResponse, 0, len(paid))
	for _, credit := range paid {
		out = append(out, dto.NewRefundCreditResponse(credit))
	}
	c.JSON(http.StatusOK, gin.H{"withdrawn": out})
}

// DepositFunds credits vault funds for token bids and relay fees
func (h *handler) DepositFunds(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if !req.Amount.IsPositive() {
		respondBadRequest(c, "Deposit amount must be positive", req.Amount.String())
		return
	}

	if err := h.depositor.Deposit(c.Request.Context(), req.Token, req.Account, req.Amount); err != nil {
		respondInternalError(c, err, "Failed to record deposit",
			zap.String("account", req.Account), zap.String("token", req.Token))
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAllowlistEntry toggles an allowlist gate
func (h *handler) SetAllowlistEntry(c *gin.Context) {
	var req dto.AllowlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	kind := domain.AllowlistKind(req.Kind)
	switch kind {
	case domain.AllowSourceChain, domain.AllowDestinationChain, domain.AllowSender:
	default:
		respondBadRequest(c, "Unknown allowlist kind", req.Kind)
		return
	}

	if err := h.store.SetAllowed(c.Request.Context(), kind, req.Value, req.Allowed); err != nil {
		respondInternalError(c, err, "Failed to update allowlist",
			zap.String("kind", req.Kind), zap.String("value", req.Value))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAllowlist retrieves the entries of one allowlist kind
func (h *handler) ListAllowlist(c *gin.Context) {
	kind := domain.AllowlistKind(c.Param("kind"))
	switch kind {
	case domain.AllowSourceChain, domain.AllowDestinationChain, domain.AllowSender:
	default:
		respondBadRequest(c, "Unknown allowlist kind", c.Param("kind"))
		return
	}

	entries, err := h.store.ListAllowlist(c.Request.Context(), kind)
	if err != nil {
		respondInternalError(c, err, "Failed to list allowlist",
			zap.String("kind", string(kind)))
		return
	}

	type entry struct {
		Value   string `json:"value"`
		Allowed bool   `json:"allowed"`
	}
	out := make([]entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entry{Value: e.Value, Allowed: e.Allowed})
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// engineOr404 resolves the engine for the :id path parameter
func (h *handler) engineOr404(c *gin.Context) (auction.Engine, bool) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Auction id is required")
		return nil, false
	}

	eng, err := h.factory.Engine(id)
	if err != nil {
		respondNotFound(c, "Auction not found")
		return nil, false
	}
	return eng, true
}
