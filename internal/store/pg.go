package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the database schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Auction{},
		&schema.CrossChainBid{},
		&schema.RefundCredit{},
		&schema.AllowlistEntry{},
		&schema.OutboundMessage{},
		&schema.EscrowedAsset{},
		&schema.VaultAccount{},
		&schema.VaultPool{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

func auctionToSchema(a *domain.Auction) *schema.Auction {
	return &schema.Auction{
		ID:                  a.ID,
		AssetRef:            a.AssetRef.String(),
		AssetOwner:          a.AssetOwner,
		PaymentToken:        a.PaymentToken,
		StartingPriceUSD:    a.StartingPriceUSD,
		MinIncrementUSD:     a.MinIncrementUSD,
		StartTime:           a.StartTime,
		EndTime:             a.EndTime,
		Ended:               a.Ended,
		AssetReleased:       a.AssetReleased,
		ProceedsPaid:        a.ProceedsPaid,
		HighestUSD:          a.HighestUSD,
		HighestBidder:       a.HighestBidder,
		HighestPaymentToken: a.HighestPaymentToken,
		HighestTokenAmount:  a.HighestTokenAmount,
		WinningMessageID:    a.WinningMessageID,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func auctionFromSchema(a *schema.Auction) *domain.Auction {
	return &domain.Auction{
		ID:                  a.ID,
		AssetRef:            domain.AssetRef(a.AssetRef),
		AssetOwner:          a.AssetOwner,
		PaymentToken:        a.PaymentToken,
		StartingPriceUSD:    a.StartingPriceUSD,
		MinIncrementUSD:     a.MinIncrementUSD,
		StartTime:           a.StartTime,
		EndTime:             a.EndTime,
		Ended:               a.Ended,
		AssetReleased:       a.AssetReleased,
		ProceedsPaid:        a.ProceedsPaid,
		HighestUSD:          a.HighestUSD,
		HighestBidder:       a.HighestBidder,
		HighestPaymentToken: a.HighestPaymentToken,
		HighestTokenAmount:  a.HighestTokenAmount,
		WinningMessageID:    a.WinningMessageID,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func crossChainBidToSchema(b *domain.CrossChainBid) *schema.CrossChainBid {
	return &schema.CrossChainBid{
		MessageID:     b.MessageID,
		AuctionID:     b.AuctionID,
		Bidder:        b.Bidder,
		AmountUSD:     b.AmountUSD,
		SourceChain:   string(b.SourceChain),
		CurrentWinner: b.IsCurrentWinner,
		ReceivedAt:    b.ReceivedAt,
	}
}

func crossChainBidFromSchema(b *schema.CrossChainBid) *domain.CrossChainBid {
	return &domain.CrossChainBid{
		MessageID:       b.MessageID,
		AuctionID:       b.AuctionID,
		Bidder:          b.Bidder,
		AmountUSD:       b.AmountUSD,
		SourceChain:     domain.Chain(b.SourceChain),
		IsCurrentWinner: b.CurrentWinner,
		ReceivedAt:      b.ReceivedAt,
	}
}

func refundCreditFromSchema(c *schema.RefundCredit) *domain.RefundCredit {
	return &domain.RefundCredit{
		ID:           c.ID,
		AuctionID:    c.AuctionID,
		Payee:        c.Payee,
		PaymentToken: c.PaymentToken,
		Amount:       c.Amount,
		Withdrawn:    c.Withdrawn,
		CreatedAt:    c.CreatedAt,
	}
}

func (s *pgStore) CreateAuction(ctx context.Context, auction *domain.Auction) error {
	return s.db.WithContext(ctx).Create(auctionToSchema(auction)).Error
}

func (s *pgStore) GetAuction(ctx context.Context, id string) (*domain.Auction, error) {
	var row schema.Auction
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}
	return auctionFromSchema(&row), nil
}

func (s *pgStore) ListAuctions(ctx context.Context) ([]*domain.Auction, error) {
	var rows []schema.Auction
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	auctions := make([]*domain.Auction, 0, len(rows))
	for i := range rows {
		auctions = append(auctions, auctionFromSchema(&rows[i]))
	}
	return auctions, nil
}

func (s *pgStore) SaveAdmission(ctx context.Context, auction *domain.Auction, bid *domain.CrossChainBid, credit *domain.RefundCredit) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"highest_usd":           auction.HighestUSD,
			"highest_bidder":        auction.HighestBidder,
			"highest_payment_token": auction.HighestPaymentToken,
			"highest_token_amount":  auction.HighestTokenAmount,
			"winning_message_id":    auction.WinningMessageID,
			"updated_at":            auction.UpdatedAt,
		}
		result := tx.Model(&schema.Auction{}).Where("id = ?", auction.ID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrAuctionNotFound
		}

		// at most one leading cross-chain bid per auction
		if err := tx.Model(&schema.CrossChainBid{}).
			Where("auction_id = ? AND current_winner", auction.ID).
			Update("current_winner", false).Error; err != nil {
			return err
		}

		if bid != nil {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "message_id"}},
				DoNothing: true,
			}).Create(crossChainBidToSchema(bid)).Error; err != nil {
				return err
			}
			if bid.IsCurrentWinner {
				if err := tx.Model(&schema.CrossChainBid{}).
					Where("message_id = ?", bid.MessageID).
					Update("current_winner", true).Error; err != nil {
					return err
				}
			}
		} else if auction.WinningMessageID != "" {
			if err := tx.Model(&schema.CrossChainBid{}).
				Where("message_id = ?", auction.WinningMessageID).
				Update("current_winner", true).Error; err != nil {
				return err
			}
		}

		if credit != nil {
			row := &schema.RefundCredit{
				AuctionID:    credit.AuctionID,
				Payee:        credit.Payee,
				PaymentToken: credit.PaymentToken,
				Amount:       credit.Amount,
				CreatedAt:    credit.CreatedAt,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			credit.ID = row.ID
		}

		return nil
	})
}

func (s *pgStore) SaveFinalization(ctx context.Context, auction *domain.Auction) error {
	result := s.db.WithContext(ctx).Model(&schema.Auction{}).
		Where("id = ? AND NOT ended", auction.ID).
		Updates(map[string]interface{}{
			"ended":      true,
			"updated_at": auction.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyFinalized
	}
	return nil
}

func (s *pgStore) MarkAssetReleased(ctx context.Context, auctionID string) error {
	return s.db.WithContext(ctx).Model(&schema.Auction{}).
		Where("id = ?", auctionID).
		Updates(map[string]interface{}{
			"asset_released": true,
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (s *pgStore) MarkProceedsPaid(ctx context.Context, auctionID string) error {
	return s.db.WithContext(ctx).Model(&schema.Auction{}).
		Where("id = ?", auctionID).
		Updates(map[string]interface{}{
			"proceeds_paid": true,
			"updated_at":    time.Now().UTC(),
		}).Error
}

func (s *pgStore) HasCrossChainBid(ctx context.Context, messageID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.CrossChainBid{}).
		Where("message_id = ?", messageID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *pgStore) RecordCrossChainBid(ctx context.Context, bid *domain.CrossChainBid) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}},
		DoNothing: true,
	}).Create(crossChainBidToSchema(bid)).Error
}

func (s *pgStore) GetCrossChainBid(ctx context.Context, messageID string) (*domain.CrossChainBid, error) {
	var row schema.CrossChainBid
	err := s.db.WithContext(ctx).Where("message_id = ?", messageID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return crossChainBidFromSchema(&row), nil
}

func (s *pgStore) ListCrossChainBidIDs(ctx context.Context, auctionID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&schema.CrossChainBid{}).
		Where("auction_id = ?", auctionID).
		Order("received_at ASC, id ASC").
		Pluck("message_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *pgStore) IsAllowed(ctx context.Context, kind domain.AllowlistKind, value string) (bool, error) {
	var row schema.AllowlistEntry
	err := s.db.WithContext(ctx).
		Where("kind = ? AND value = ?", string(kind), value).
		First(&row).Error
	if err != nil {
		// default deny
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return row.Allowed, nil
}

func (s *pgStore) SetAllowed(ctx context.Context, kind domain.AllowlistKind, value string, allowed bool) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "value"}},
		DoUpdates: clause.AssignmentColumns([]string{"allowed", "updated_at"}),
	}).Create(&schema.AllowlistEntry{
		Kind:      string(kind),
		Value:     value,
		Allowed:   allowed,
		UpdatedAt: time.Now().UTC(),
	}).Error
}

func (s *pgStore) ListAllowlist(ctx context.Context, kind domain.AllowlistKind) ([]*schema.AllowlistEntry, error) {
	var rows []*schema.AllowlistEntry
	err := s.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("value ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *pgStore) RecordOutboundMessage(ctx context.Context, msg *domain.OutboundMessage) error {
	return s.db.WithContext(ctx).Create(&schema.OutboundMessage{
		MessageID:          msg.MessageID,
		AuctionID:          msg.AuctionID,
		DestinationChain:   string(msg.DestinationChain),
		DestinationAdapter: msg.DestinationAdapter,
		Bidder:             msg.Bidder,
		AmountUSD:          msg.AmountUSD,
		FeePaid:            msg.FeePaid,
		SentAt:             msg.SentAt,
	}).Error
}

func (s *pgStore) ListOutboundMessages(ctx context.Context, auctionID string) ([]*domain.OutboundMessage, error) {
	var rows []schema.OutboundMessage
	err := s.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("sent_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]*domain.OutboundMessage, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		msgs = append(msgs, &domain.OutboundMessage{
			MessageID:          row.MessageID,
			AuctionID:          row.AuctionID,
			DestinationChain:   domain.Chain(row.DestinationChain),
			DestinationAdapter: row.DestinationAdapter,
			Bidder:             row.Bidder,
			AmountUSD:          row.AmountUSD,
			FeePaid:            row.FeePaid,
			SentAt:             row.SentAt,
		})
	}
	return msgs, nil
}

func (s *pgStore) ListRefundCredits(ctx context.Context, payee string) ([]*domain.RefundCredit, error) {
	var rows []schema.RefundCredit
	err := s.db.WithContext(ctx).
		Where("payee = ? AND NOT withdrawn", payee).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	credits := make([]*domain.RefundCredit, 0, len(rows))
	for i := range rows {
		credits = append(credits, refundCreditFromSchema(&rows[i]))
	}
	return credits, nil
}

func (s *pgStore) ClaimRefundCredits(ctx context.Context, payee string) ([]*domain.RefundCredit, error) {
	var credits []*domain.RefundCredit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []schema.RefundCredit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payee = ? AND NOT withdrawn", payee).
			Order("id ASC").
			Find(&rows).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		now := time.Now().UTC()
		ids := make([]int64, 0, len(rows))
		for i := range rows {
			ids = append(ids, rows[i].ID)
		}
		if err := tx.Model(&schema.RefundCredit{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"withdrawn":    true,
				"withdrawn_at": now,
			}).Error; err != nil {
			return err
		}

		for i := range rows {
			credit := refundCreditFromSchema(&rows[i])
			credit.Withdrawn = true
			credits = append(credits, credit)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return credits, nil
}

func (s *pgStore) ReopenRefundCredit(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&schema.RefundCredit{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"withdrawn":    false,
			"withdrawn_at": nil,
		}).Error
}
