package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"arenaapp_backend/internal/cache"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/logger"
	"arenaapp_backend/internal/models"
	"arenaapp_backend/internal/repositories"
	"arenaapp_backend/internal/services/dto"
	"arenaapp_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService owns the directory entries of every type: admin CRUD,
// published snapshots and the public browse pipeline on top of them.
type CatalogService interface {
	// PublicListings returns the full published item array of one type in
	// one language, served from the snapshot cache when fresh.
	PublicListings(ctx context.Context, db *gorm.DB, typ listing.Type, lang string) ([]listing.Item, error)

	// Browse runs filter, sort and paginate over the published array and
	// derives the dropdown option sets from the unfiltered array.
	Browse(ctx context.Context, db *gorm.DB, typ listing.Type, req *dto.BrowseRequest) (*dto.BrowsePage, error)

	AdminList(db *gorm.DB, typ listing.Type, search string, page int) (*dto.AdminPage, error)
	GetByID(db *gorm.DB, typ listing.Type, id string) (*models.Listing, error)
	Create(ctx context.Context, db *gorm.DB, typ listing.Type, req *dto.ListingRequest) (*models.Listing, error)
	Update(ctx context.Context, db *gorm.DB, typ listing.Type, id string, req *dto.ListingRequest) (*models.Listing, error)
	Delete(ctx context.Context, db *gorm.DB, typ listing.Type, id string) error

	// RefreshSnapshots rebuilds every (type, lang) snapshot. Called by the
	// background worker.
	RefreshSnapshots(ctx context.Context, db *gorm.DB) error
}

type CatalogServiceImpl struct {
	listingRepo repositories.ListingRepository
	store       cache.Store
}

func NewCatalogService(listingRepo repositories.ListingRepository, store cache.Store) CatalogService {
	return &CatalogServiceImpl{
		listingRepo: listingRepo,
		store:       store,
	}
}

func snapshotKey(typ listing.Type, lang string) string {
	return fmt.Sprintf("listings:%s:%s", typ, lang)
}

func snapshotTTL() time.Duration {
	return time.Duration(config.GetConfig().Catalog.SnapshotTTL) * time.Second
}

func (s *CatalogServiceImpl) PublicListings(ctx context.Context, db *gorm.DB, typ listing.Type, lang string) ([]listing.Item, error) {
	if !listing.ValidType(typ) {
		return nil, apperrors.ErrUnknownListingType
	}
	lang = listing.NormalizeLang(lang)

	key := snapshotKey(typ, lang)
	if raw, ok := s.store.Get(ctx, key); ok {
		var items []listing.Item
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		// A corrupt snapshot falls through to the database.
		logger.CtxWarn(ctx, "discarding unreadable snapshot", "key", key)
		s.store.Delete(ctx, key)
	}

	items, err := s.loadPublished(db, typ, lang)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		s.store.Set(ctx, key, raw, snapshotTTL())
	}
	return items, nil
}

func (s *CatalogServiceImpl) loadPublished(db *gorm.DB, typ listing.Type, lang string) ([]listing.Item, error) {
	rows, err := s.listingRepo.FindPublished(db, typ)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]listing.Item, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToItem(lang))
	}
	return items, nil
}

func (s *CatalogServiceImpl) Browse(ctx context.Context, db *gorm.DB, typ listing.Type, req *dto.BrowseRequest) (*dto.BrowsePage, error) {
	items, err := s.PublicListings(ctx, db, typ, req.Lang)
	if err != nil {
		return nil, err
	}

	filters := listing.Filters{
		Search:    req.Search,
		Zone:      req.Zone,
		Category:  req.Category,
		PriceTier: req.Price,
		Stars:     req.Stars,
		Cuisines:  req.Cuisines,
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	result := listing.Apply(items, filters, page, listing.PublicPageSize, time.Now())

	return &dto.BrowsePage{
		Items: result.Items,
		// Options always reflect the full published array, not the
		// filtered subset, so narrowing one filter never hides the
		// other dropdowns' values.
		Options:    listing.DeriveOptions(items),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}, nil
}

func (s *CatalogServiceImpl) AdminList(db *gorm.DB, typ listing.Type, search string, page int) (*dto.AdminPage, error) {
	if !listing.ValidType(typ) {
		return nil, apperrors.ErrUnknownListingType
	}
	if page < 1 {
		page = 1
	}

	rows, total, err := s.listingRepo.FindPaged(db, typ, search, page, listing.AdminPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminPage{
		Data:       rows,
		Page:       page,
		TotalPages: listing.TotalPages(int(total), listing.AdminPageSize),
		Total:      total,
	}, nil
}

func (s *CatalogServiceImpl) GetByID(db *gorm.DB, typ listing.Type, id string) (*models.Listing, error) {
	if !listing.ValidType(typ) {
		return nil, apperrors.ErrUnknownListingType
	}

	row, err := s.listingRepo.FindByID(db, typ, id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Listing not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return row, nil
}

func (s *CatalogServiceImpl) Create(ctx context.Context, db *gorm.DB, typ listing.Type, req *dto.ListingRequest) (*models.Listing, error) {
	if !listing.ValidType(typ) {
		return nil, apperrors.ErrUnknownListingType
	}

	row := &models.Listing{Type: typ}
	applyRequest(row, req)

	if err := s.listingRepo.Create(db, row); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.invalidateSnapshots(ctx, typ)
	logger.Info("listing created", "type", typ, "id", row.ID)
	return row, nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, db *gorm.DB, typ listing.Type, id string, req *dto.ListingRequest) (*models.Listing, error) {
	row, err := s.GetByID(db, typ, id)
	if err != nil {
		return nil, err
	}

	applyRequest(row, req)

	if err := s.listingRepo.Update(db, row); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Listing not found")
		}
		return nil, apperrors.InternalError(err)
	}

	s.invalidateSnapshots(ctx, typ)
	logger.Info("listing updated", "type", typ, "id", id)
	return row, nil
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, db *gorm.DB, typ listing.Type, id string) error {
	if !listing.ValidType(typ) {
		return apperrors.ErrUnknownListingType
	}

	if err := s.listingRepo.Delete(db, typ, id); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrNotFound(err, "catalog", "Listing not found")
		}
		return apperrors.InternalError(err)
	}

	s.invalidateSnapshots(ctx, typ)
	logger.Info("listing deleted", "type", typ, "id", id)
	return nil
}

func (s *CatalogServiceImpl) RefreshSnapshots(ctx context.Context, db *gorm.DB) error {
	var firstErr error
	for _, typ := range listing.AllTypes() {
		for _, lang := range []string{listing.LangES, listing.LangEN, listing.LangPT} {
			items, err := s.loadPublished(db, typ, lang)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			raw, err := json.Marshal(items)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			s.store.Set(ctx, snapshotKey(typ, lang), raw, snapshotTTL())
		}
	}
	return firstErr
}

// invalidateSnapshots drops every language snapshot of one type after a
// mutation, so the next public read rebuilds from the database.
func (s *CatalogServiceImpl) invalidateSnapshots(ctx context.Context, typ listing.Type) {
	for _, lang := range []string{listing.LangES, listing.LangEN, listing.LangPT} {
		s.store.Delete(ctx, snapshotKey(typ, lang))
	}
}

func applyRequest(row *models.Listing, req *dto.ListingRequest) {
	row.Name = req.Name
	row.Description = req.Description
	row.Zone = req.Zone
	row.City = req.City
	row.Province = req.Province
	row.Country = req.Country
	row.Category = req.Category
	row.Cuisines = datatypes.NewJSONSlice(req.Cuisines)
	row.PriceTier = req.PriceTier
	row.Stars = req.Stars
	row.Featured = req.Featured
	row.Published = req.Published
	row.Image = req.Image
	row.StartDate = req.StartDate
	row.EndDate = req.EndDate
	row.AllDay = req.AllDay
	row.OpeningDate = req.OpeningDate
	row.OutletCount = req.OutletCount
	row.Amenities = datatypes.NewJSONSlice(req.Amenities)
	if req.Translations != nil {
		row.Translations = datatypes.NewJSONType(req.Translations)
	}
}
