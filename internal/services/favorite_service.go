package services

import (
	"errors"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/logger"
	"arenaapp_backend/internal/models"
	"arenaapp_backend/internal/repositories"
	"arenaapp_backend/internal/services/dto"
	"arenaapp_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// FavoriteService manages a user's saved listings across all catalog types.
type FavoriteService interface {
	// ListAll loads the favorite id sets of every type. A single type's
	// failure degrades to an empty set instead of failing the whole call.
	ListAll(db *gorm.DB, userID string) dto.FavoriteSets

	ListByType(db *gorm.DB, userID string, typ listing.Type) ([]dto.FavoriteRecord, error)

	// Add saves a listing. Saving one already saved is a no-op, not an
	// error, so repeated toggles converge.
	Add(db *gorm.DB, userID string, typ listing.Type, listingID string) error

	// Remove deletes a saved listing, tolerating one that is not there.
	Remove(db *gorm.DB, userID string, typ listing.Type, listingID string) error
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	listingRepo  repositories.ListingRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, listingRepo repositories.ListingRepository) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

func (s *FavoriteServiceImpl) ListAll(db *gorm.DB, userID string) dto.FavoriteSets {
	sets := dto.FavoriteSets{}
	for _, typ := range listing.AllTypes() {
		favorites, err := s.favoriteRepo.FindByUserAndType(db, userID, typ)
		if err != nil {
			logger.WithError(err).Warn("favorite set load failed", "type", typ, "user_id", userID)
			sets[typ] = []string{}
			continue
		}
		ids := make([]string, 0, len(favorites))
		for _, f := range favorites {
			ids = append(ids, f.ListingID)
		}
		sets[typ] = ids
	}
	return sets
}

func (s *FavoriteServiceImpl) ListByType(db *gorm.DB, userID string, typ listing.Type) ([]dto.FavoriteRecord, error) {
	if !listing.ValidType(typ) {
		return nil, apperrors.ErrUnknownListingType
	}

	favorites, err := s.favoriteRepo.FindByUserAndType(db, userID, typ)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	records := make([]dto.FavoriteRecord, 0, len(favorites))
	for _, f := range favorites {
		records = append(records, dto.NewFavoriteRecord(f))
	}
	return records, nil
}

func (s *FavoriteServiceImpl) Add(db *gorm.DB, userID string, typ listing.Type, listingID string) error {
	if !listing.ValidType(typ) {
		return apperrors.ErrUnknownListingType
	}

	if _, err := s.listingRepo.FindByID(db, typ, listingID); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrNotFound(err, "favorites", "Listing not found")
		}
		return apperrors.InternalError(err)
	}

	exists, err := s.favoriteRepo.Exists(db, userID, typ, listingID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return nil
	}

	fav := &models.Favorite{
		UserID:     userID,
		EntityType: typ,
		ListingID:  listingID,
	}
	if err := s.favoriteRepo.Create(db, fav); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) Remove(db *gorm.DB, userID string, typ listing.Type, listingID string) error {
	if !listing.ValidType(typ) {
		return apperrors.ErrUnknownListingType
	}

	err := s.favoriteRepo.Delete(db, userID, typ, listingID)
	if err != nil && !errors.Is(err, repositories.ErrFavoriteNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}
