package services

import (
	"testing"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"
	"arenaapp_backend/internal/repositories"
	"arenaapp_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFavoriteService() FavoriteService {
	return NewFavoriteService(repositories.NewFavoriteRepository(), repositories.NewListingRepository())
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:        "someone@test.local",
		PasswordHash: "irrelevant",
		Name:         "Someone",
		Role:         models.UserRoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newFavoriteService()

	user := seedUser(t, db)
	bar := seedListing(t, db, listing.TypeBar, "Bar Favorito")

	require.NoError(t, svc.Add(db, user.ID, listing.TypeBar, bar.ID))

	sets := svc.ListAll(db, user.ID)
	assert.Equal(t, []string{bar.ID}, sets[listing.TypeBar])

	require.NoError(t, svc.Remove(db, user.ID, listing.TypeBar, bar.ID))

	sets = svc.ListAll(db, user.ID)
	assert.Empty(t, sets[listing.TypeBar])
}

func TestFavoriteToggleIsIdempotent(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newFavoriteService()

	user := seedUser(t, db)
	cafe := seedListing(t, db, listing.TypeCafe, "Café Doble")

	require.NoError(t, svc.Add(db, user.ID, listing.TypeCafe, cafe.ID))
	require.NoError(t, svc.Add(db, user.ID, listing.TypeCafe, cafe.ID))

	records, err := svc.ListByType(db, user.ID, listing.TypeCafe)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Removing twice is equally harmless.
	require.NoError(t, svc.Remove(db, user.ID, listing.TypeCafe, cafe.ID))
	require.NoError(t, svc.Remove(db, user.ID, listing.TypeCafe, cafe.ID))
}

func TestFavoriteSameIDAcrossTypesIsDistinct(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newFavoriteService()

	user := seedUser(t, db)
	bar := seedListing(t, db, listing.TypeBar, "Esquina")

	require.NoError(t, svc.Add(db, user.ID, listing.TypeBar, bar.ID))

	// The same id under another type is not saved.
	sets := svc.ListAll(db, user.ID)
	assert.Equal(t, []string{bar.ID}, sets[listing.TypeBar])
	assert.Empty(t, sets[listing.TypeRestaurant])
}

func TestFavoriteAddUnknownListing(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newFavoriteService()
	user := seedUser(t, db)

	err := svc.Add(db, user.ID, listing.TypeBar, "00000000-0000-0000-0000-000000000000")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	err = svc.Add(db, user.ID, listing.Type("museos"), "whatever")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestFavoriteListAllDegradesPerType(t *testing.T) {
	setupTestConfig(t)
	db := setupTestDB(t)
	svc := newFavoriteService()
	user := seedUser(t, db)

	// With the backing table gone every set degrades to empty instead of
	// the whole call failing.
	require.NoError(t, db.Migrator().DropTable(&models.Favorite{}))

	sets := svc.ListAll(db, user.ID)
	require.Len(t, sets, len(listing.AllTypes()))
	for typ, ids := range sets {
		assert.Empty(t, ids, "type %s", typ)
	}
}
