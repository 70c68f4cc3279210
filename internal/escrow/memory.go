package escrow

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/crosslot/auction-house/internal/domain"
)

// MemoryAssetRegistry is an in-process AssetRegistry for local deployments
// and tests. Assets must be registered before they can be held.
type MemoryAssetRegistry struct {
	mu     sync.Mutex
	owners map[string]string
	held   map[string]bool
}

func NewMemoryAssetRegistry() *MemoryAssetRegistry {
	return &MemoryAssetRegistry{
		owners: map[string]string{},
		held:   map[string]bool{},
	}
}

// Register seeds ownership of an asset
func (r *MemoryAssetRegistry) Register(asset domain.AssetRef, owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[asset.String()] = domain.NormalizeAddress(owner)
}

func (r *MemoryAssetRegistry) Hold(ctx context.Context, asset domain.AssetRef, from string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := asset.String()
	if r.owners[key] != domain.NormalizeAddress(from) || r.held[key] {
		return domain.ErrTransferFailed
	}
	r.held[key] = true
	return nil
}

func (r *MemoryAssetRegistry) Release(ctx context.Context, asset domain.AssetRef, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := asset.String()
	if !r.held[key] {
		return domain.ErrTransferFailed
	}
	r.held[key] = false
	r.owners[key] = domain.NormalizeAddress(to)
	return nil
}

// Owner reports the current owner of an asset
func (r *MemoryAssetRegistry) Owner(asset domain.AssetRef) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owners[asset.String()]
}

// MemoryVault is an in-process TokenVault. Native pulls always succeed since
// the caller attaches the funds with the request. Token pulls consume an
// allowance seeded with Approve, mirroring ERC-20 transferFrom semantics.
type MemoryVault struct {
	mu         sync.Mutex
	pool       map[string]decimal.Decimal
	escrowed   map[string]decimal.Decimal
	allowances map[string]decimal.Decimal
}

func NewMemoryVault() *MemoryVault {
	return &MemoryVault{
		pool:       map[string]decimal.Decimal{},
		escrowed:   map[string]decimal.Decimal{},
		allowances: map[string]decimal.Decimal{},
	}
}

func vaultKey(token, account string) string {
	return token + "|" + domain.NormalizeAddress(account)
}

// Approve seeds a token allowance for the payer
func (v *MemoryVault) Approve(token, payer string, amount decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.allowances[vaultKey(token, payer)] = amount
}

// Deposit adds to the payer's token allowance
func (v *MemoryVault) Deposit(ctx context.Context, token, payer string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrTransferFailed
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	key := vaultKey(token, payer)
	if allowance, ok := v.allowances[key]; ok {
		v.allowances[key] = allowance.Add(amount)
	} else {
		v.allowances[key] = amount
	}
	return nil
}

func (v *MemoryVault) Pull(ctx context.Context, token, payer string, amount decimal.Decimal) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != domain.PaymentTokenNative {
		key := vaultKey(token, payer)
		allowance, ok := v.allowances[key]
		if !ok || allowance.LessThan(amount) {
			return domain.ErrInsufficientAllowance
		}
		v.allowances[key] = allowance.Sub(amount)
	}

	key := vaultKey(token, payer)
	if held, ok := v.escrowed[key]; ok {
		v.escrowed[key] = held.Add(amount)
	} else {
		v.escrowed[key] = amount
	}
	if pooled, ok := v.pool[token]; ok {
		v.pool[token] = pooled.Add(amount)
	} else {
		v.pool[token] = amount
	}
	return nil
}

func (v *MemoryVault) Payout(ctx context.Context, token, recipient string, amount decimal.Decimal) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	pooled, ok := v.pool[token]
	if !ok || pooled.LessThan(amount) {
		return domain.ErrTransferFailed
	}
	v.pool[token] = pooled.Sub(amount)
	return nil
}

// Escrowed reports the amount currently held for an account in a token
func (v *MemoryVault) Escrowed(token, account string) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	if held, ok := v.escrowed[vaultKey(token, account)]; ok {
		return held
	}
	return decimal.Zero
}
