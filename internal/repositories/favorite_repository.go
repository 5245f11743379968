package repositories

import (
	"errors"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	// FindByUserAndType returns the full favorite set of one type for a
	// user. Never paginated; favorite sets are assumed small.
	FindByUserAndType(db *gorm.DB, userID string, typ listing.Type) ([]models.Favorite, error)

	Exists(db *gorm.DB, userID string, typ listing.Type, listingID string) (bool, error)
	Create(db *gorm.DB, fav *models.Favorite) error
	Delete(db *gorm.DB, userID string, typ listing.Type, listingID string) error
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) FindByUserAndType(db *gorm.DB, userID string, typ listing.Type) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := db.
		Where("user_id = ? AND entity_type = ?", userID, typ).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepositoryImpl) Exists(db *gorm.DB, userID string, typ listing.Type, listingID string) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND entity_type = ? AND listing_id = ?", userID, typ, listingID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) Create(db *gorm.DB, fav *models.Favorite) error {
	return db.Create(fav).Error
}

func (r *FavoriteRepositoryImpl) Delete(db *gorm.DB, userID string, typ listing.Type, listingID string) error {
	result := db.
		Where("user_id = ? AND entity_type = ? AND listing_id = ?", userID, typ, listingID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
