package models

import (
	"time"

	"arenaapp_backend/internal/listing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite marks one listing as saved by one user. Identity is the
// (user, type, listing) triple; the unique index makes the toggle
// idempotent at the storage level.
type Favorite struct {
	ID         string       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string       `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_type_listing" json:"userId"`
	EntityType listing.Type `gorm:"type:varchar(16);not null;uniqueIndex:idx_user_type_listing" json:"entityType"`
	ListingID  string       `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_type_listing" json:"listingId"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"createdAt"`

	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
