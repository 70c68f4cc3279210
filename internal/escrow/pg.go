package escrow

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crosslot/auction-house/internal/domain"
	"github.com/crosslot/auction-house/internal/store/schema"
)

// PGAssetRegistry keeps asset custody in the database so it survives
// restarts and is shared by every process pointed at the same store. The
// first Hold of an unseen asset records the consigning owner.
type PGAssetRegistry struct {
	db *gorm.DB
}

func NewPGAssetRegistry(db *gorm.DB) *PGAssetRegistry {
	return &PGAssetRegistry{db: db}
}

func (r *PGAssetRegistry) Hold(ctx context.Context, asset domain.AssetRef, from string) error {
	from = domain.NormalizeAddress(from)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.EscrowedAsset
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("asset_ref = ?", asset.String()).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&schema.EscrowedAsset{
				AssetRef:  asset.String(),
				Owner:     from,
				Held:      true,
				UpdatedAt: time.Now().UTC(),
			}).Error
		}
		if err != nil {
			return err
		}
		if row.Held || row.Owner != from {
			return domain.ErrTransferFailed
		}
		return tx.Model(&schema.EscrowedAsset{}).
			Where("asset_ref = ?", asset.String()).
			Updates(map[string]interface{}{
				"held":       true,
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

func (r *PGAssetRegistry) Release(ctx context.Context, asset domain.AssetRef, to string) error {
	result := r.db.WithContext(ctx).Model(&schema.EscrowedAsset{}).
		Where("asset_ref = ? AND held", asset.String()).
		Updates(map[string]interface{}{
			"held":       false,
			"owner":      domain.NormalizeAddress(to),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransferFailed
	}
	return nil
}

// PGVault keeps bid funds in the database. Native pulls always succeed since
// the caller attaches the funds with the request; token pulls consume a
// balance credited through Deposit.
type PGVault struct {
	db *gorm.DB
}

func NewPGVault(db *gorm.DB) *PGVault {
	return &PGVault{db: db}
}

// Deposit credits funds a later Pull may consume
func (v *PGVault) Deposit(ctx context.Context, token, account string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrTransferFailed
	}
	account = domain.NormalizeAddress(account)
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockVaultAccount(tx, token, account)
		if err != nil {
			return err
		}
		return tx.Model(&schema.VaultAccount{}).
			Where("id = ?", row.ID).
			Updates(map[string]interface{}{
				"available":  row.Available.Add(amount),
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

func (v *PGVault) Pull(ctx context.Context, token, payer string, amount decimal.Decimal) error {
	payer = domain.NormalizeAddress(payer)
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockVaultAccount(tx, token, payer)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"escrowed":   row.Escrowed.Add(amount),
			"updated_at": time.Now().UTC(),
		}
		if token != domain.PaymentTokenNative {
			if row.Available.LessThan(amount) {
				return domain.ErrInsufficientAllowance
			}
			updates["available"] = row.Available.Sub(amount)
		}
		if err := tx.Model(&schema.VaultAccount{}).
			Where("id = ?", row.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		return addToPool(tx, token, amount)
	})
}

func (v *PGVault) Payout(ctx context.Context, token, recipient string, amount decimal.Decimal) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pool schema.VaultPool
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token = ?", token).
			First(&pool).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransferFailed
		}
		if err != nil {
			return err
		}
		if pool.Balance.LessThan(amount) {
			return domain.ErrTransferFailed
		}
		return tx.Model(&schema.VaultPool{}).
			Where("token = ?", token).
			Updates(map[string]interface{}{
				"balance":    pool.Balance.Sub(amount),
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

// lockVaultAccount loads the balance row for update, creating a zeroed row
// when the account has never been seen
func lockVaultAccount(tx *gorm.DB, token, account string) (*schema.VaultAccount, error) {
	var row schema.VaultAccount
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ? AND account = ?", token, account).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = schema.VaultAccount{
			Token:     token,
			Account:   account,
			Available: decimal.Zero,
			Escrowed:  decimal.Zero,
			UpdatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func addToPool(tx *gorm.DB, token string, amount decimal.Decimal) error {
	var pool schema.VaultPool
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ?", token).
		First(&pool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&schema.VaultPool{
			Token:     token,
			Balance:   amount,
			UpdatedAt: time.Now().UTC(),
		}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&schema.VaultPool{}).
		Where("token = ?", token).
		Updates(map[string]interface{}{
			"balance":    pool.Balance.Add(amount),
			"updated_at": time.Now().UTC(),
		}).Error
}
