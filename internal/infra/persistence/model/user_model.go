package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Email uniqueness is enforced by a functional unique index on LOWER(email),
// so two registrations differing only in case collide at the store level.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	WatchlistEntries []WatchlistEntryModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WatchlistEntryModel mirrors the 'watchlist_entries' table. The composite
// unique index makes duplicate follows fail at insert time.
type WatchlistEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_coin"`
	CoinID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_watchlist_user_coin"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchlistEntryModel) TableName() string {
	return "watchlist_entries"
}
