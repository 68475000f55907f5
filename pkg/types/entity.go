package types

import "time"

// BaseEntity is the shape shared by every persisted record.
// ID is zero until the store assigns one.
type BaseEntity struct {
	ID        uint64    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}

// NewBaseEntity returns the defaults for a record that has not been stored yet.
func NewBaseEntity() BaseEntity {
	return BaseEntity{IsActive: true}
}

func (b BaseEntity) GetID() uint64 { return b.ID }
