package schema

import (
	"time"
)

// AllowlistEntry represents the allowlist_entries table - operator-managed
// gates for cross-chain traffic, keyed by kind and value
type AllowlistEntry struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Kind is the gate category (source_chain, destination_chain, sender)
	Kind string `gorm:"column:kind;not null;type:text;uniqueIndex:idx_allowlist_kind_value,priority:1"`
	// Value is the gated chain id or address
	Value string `gorm:"column:value;not null;type:text;uniqueIndex:idx_allowlist_kind_value,priority:2"`
	// Allowed is the current state of the gate
	Allowed bool `gorm:"column:allowed;not null;default:false"`
	// UpdatedAt is when the gate was last toggled
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for GORM
func (AllowlistEntry) TableName() string {
	return "allowlist_entries"
}
