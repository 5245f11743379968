package services

import (
	"context"
	"sync"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/services/dto"
	"arenaapp_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SearchService answers cross-type queries over all seven catalogs at once.
type SearchService interface {
	// Search loads every type concurrently, maps each into the common
	// result shape and runs the unified pipeline. The load is all or
	// nothing: one failed type fails the whole search rather than
	// silently returning a partial result set.
	Search(ctx context.Context, db *gorm.DB, req *dto.UnifiedSearchRequest) (*dto.UnifiedSearchResponse, error)
}

type SearchServiceImpl struct {
	catalog CatalogService
}

func NewSearchService(catalog CatalogService) SearchService {
	return &SearchServiceImpl{catalog: catalog}
}

func (s *SearchServiceImpl) Search(ctx context.Context, db *gorm.DB, req *dto.UnifiedSearchRequest) (*dto.UnifiedSearchResponse, error) {
	lang := listing.NormalizeLang(req.Lang)
	types := listing.AllTypes()

	perType := make([][]listing.Result, len(types))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, typ := range types {
		i, typ := i, typ
		g.Go(func() error {
			items, err := s.catalog.PublicListings(gctx, db, typ, lang)
			if err != nil {
				return err
			}
			results := listing.MapItems(items, lang)
			mu.Lock()
			perType[i] = results
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return nil, appErr
		}
		return nil, apperrors.ErrExternal(err, "search", "Search source unavailable")
	}

	// Concatenate in the fixed type order so ties after sorting stay
	// deterministic across requests.
	var all []listing.Result
	for _, results := range perType {
		all = append(all, results...)
	}

	filters := listing.Filters{
		Search:     req.Query,
		PriceBadge: req.Price,
		Types:      req.Types,
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	result := listing.ApplyResults(all, filters, lang, page, listing.PublicPageSize)

	return &dto.UnifiedSearchResponse{
		Results:    result.Results,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}, nil
}
