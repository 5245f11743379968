package repositories

import (
	"errors"
	"strings"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingRepository persists directory entries. The db handle is passed per
// call so tests can run every operation inside a transaction.
type ListingRepository interface {
	Create(db *gorm.DB, l *models.Listing) error
	Update(db *gorm.DB, l *models.Listing) error
	Delete(db *gorm.DB, typ listing.Type, id string) error
	FindByID(db *gorm.DB, typ listing.Type, id string) (*models.Listing, error)

	// FindPublished returns the full published array of one type, the
	// source set the browse pipeline runs over.
	FindPublished(db *gorm.DB, typ listing.Type) ([]models.Listing, error)

	// FindPaged is the admin table query: server-side pagination with an
	// optional case-insensitive name search.
	FindPaged(db *gorm.DB, typ listing.Type, search string, page, pageSize int) ([]models.Listing, int64, error)
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, l *models.Listing) error {
	return db.Create(l).Error
}

func (r *ListingRepositoryImpl) Update(db *gorm.DB, l *models.Listing) error {
	result := db.Model(&models.Listing{}).
		Where("id = ? AND type = ?", l.ID, l.Type).
		Select("*").
		Omit("id", "type", "created_at").
		Updates(l)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepositoryImpl) Delete(db *gorm.DB, typ listing.Type, id string) error {
	result := db.Where("id = ? AND type = ?", id, typ).Delete(&models.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, typ listing.Type, id string) (*models.Listing, error) {
	var l models.Listing
	err := db.First(&l, "id = ? AND type = ?", id, typ).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepositoryImpl) FindPublished(db *gorm.DB, typ listing.Type) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.
		Where("type = ? AND published = ?", typ, true).
		Order("created_at ASC").
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) FindPaged(db *gorm.DB, typ listing.Type, search string, page, pageSize int) ([]models.Listing, int64, error) {
	query := db.Model(&models.Listing{}).Where("type = ?", typ)

	if search = strings.TrimSpace(search); search != "" {
		// LOWER/LIKE instead of ILIKE so the query runs on Postgres and
		// the sqlite test database alike.
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []models.Listing
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&listings).Error
	return listings, total, err
}
