package services

import (
	"context"
	"testing"

	"arenaapp_backend/internal/cache"
	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"
	"arenaapp_backend/internal/repositories"
	"arenaapp_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchService() SearchService {
	return NewSearchService(newCatalogService())
}

func TestSearchAcrossTypes(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newSearchService()

	seedListing(t, db, listing.TypeBar, "Rincón Norte", func(l *models.Listing) {
		l.Zone = "Norte"
	})
	seedListing(t, db, listing.TypeRestaurant, "Parrilla Norte", func(l *models.Listing) {
		l.Zone = "Norte"
	})
	seedListing(t, db, listing.TypeHotel, "Hotel Sur", func(l *models.Listing) {
		l.Zone = "Sur"
	})

	resp, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Query: "norte"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	types := map[listing.Type]bool{}
	for _, r := range resp.Results {
		types[r.Type] = true
	}
	assert.True(t, types[listing.TypeBar])
	assert.True(t, types[listing.TypeRestaurant])
}

func TestSearchIsAccentAndCaseInsensitive(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newSearchService()

	seedListing(t, db, listing.TypeCafe, "Café Martínez")

	resp, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Query: "cafe martinez"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Café Martínez", resp.Results[0].Title)
}

func TestSearchMatchesLocalizedTypeLabel(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newSearchService()

	seedListing(t, db, listing.TypeHotel, "Gran Plaza")
	seedListing(t, db, listing.TypeBar, "Gran Bar")

	// "hoteles" is the Spanish type label, so a hotel matches even though
	// no stored field contains the word.
	resp, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Query: "hoteles", Lang: "es"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, listing.TypeHotel, resp.Results[0].Type)

	// Same listing, English label.
	resp, err = svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Query: "hotels", Lang: "en"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
}

func TestSearchPriceBadgeFilter(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newSearchService()

	seedListing(t, db, listing.TypeRestaurant, "Barato", func(l *models.Listing) {
		l.PriceTier = intp(1)
	})
	seedListing(t, db, listing.TypeRestaurant, "Medio", func(l *models.Listing) {
		l.PriceTier = intp(2)
	})
	seedListing(t, db, listing.TypeRestaurant, "Sin Precio")

	resp, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Price: "$$"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Medio", resp.Results[0].Title)
}

func TestSearchTypeFilterAndOrdering(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newSearchService()

	seedListing(t, db, listing.TypeBar, "Zeta", func(l *models.Listing) {
		l.Featured = true
	})
	seedListing(t, db, listing.TypeBar, "Alfa")
	seedListing(t, db, listing.TypeCafe, "Beta")

	resp, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{
		Types: []listing.Type{listing.TypeBar},
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	// Highlighted first, then title order.
	assert.Equal(t, "Zeta", resp.Results[0].Title)
	assert.True(t, resp.Results[0].Highlighted)
	assert.Equal(t, "Alfa", resp.Results[1].Title)
}

func TestSearchFailsWhenASourceFails(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := NewSearchService(NewCatalogService(repositories.NewListingRepository(), cache.NewMemory()))

	require.NoError(t, db.Migrator().DropTable(&models.Listing{}))

	_, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Query: "anything"})
	require.Error(t, err)
}

func TestSearchEventSubtitleCarriesDates(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newSearchService()

	start := mustParseDate(t, "2026-09-05")
	end := mustParseDate(t, "2026-09-07")
	seedListing(t, db, listing.TypeEvent, "Feria del Libro", func(l *models.Listing) {
		l.StartDate = &start
		l.EndDate = &end
	})

	resp, err := svc.Search(context.Background(), db, &dto.UnifiedSearchRequest{Query: "feria"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "05/09/2026 – 07/09/2026", resp.Results[0].Subtitle)
}
