package dto

import (
	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"
)

// FavoriteRequest toggles one listing. The entity type comes from the URL.
type FavoriteRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid4"`
}

// FavoriteRecord is one saved-item marker, always resolvable to a listing id.
type FavoriteRecord struct {
	ID        string `json:"id"`
	ListingID string `json:"listingId"`
	CreatedAt string `json:"createdAt"`
}

func NewFavoriteRecord(f models.Favorite) FavoriteRecord {
	return FavoriteRecord{
		ID:        f.ID,
		ListingID: f.ListingID,
		CreatedAt: f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FavoriteSets maps each catalog type to the user's favorited listing ids.
// A type whose load failed degrades to an empty set.
type FavoriteSets map[listing.Type][]string
