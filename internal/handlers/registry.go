package handlers

import (
	"arenaapp_backend/internal/cache"
	"arenaapp_backend/internal/repositories"
	"arenaapp_backend/internal/services"
	"arenaapp_backend/internal/validator"
)

// AppHandlers bundles every handler plus the services the app wiring needs
// outside the HTTP layer (seeding, background workers).
type AppHandlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Search   *SearchHandler
	Favorite *FavoriteHandler

	AuthService    services.AuthService
	CatalogService services.CatalogService
}

// NewAppHandlers wires repositories, services and handlers together.
func NewAppHandlers(store cache.Store) *AppHandlers {
	listingRepo := repositories.NewListingRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	userRepo := repositories.NewUserRepository()

	catalogService := services.NewCatalogService(listingRepo, store)
	searchService := services.NewSearchService(catalogService)
	favoriteService := services.NewFavoriteService(favoriteRepo, listingRepo)
	authService := services.NewAuthService(userRepo)

	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:     NewAuthHandler(base, authService),
		Catalog:  NewCatalogHandler(base, catalogService),
		Search:   NewSearchHandler(base, searchService),
		Favorite: NewFavoriteHandler(base, favoriteService),

		AuthService:    authService,
		CatalogService: catalogService,
	}
}
