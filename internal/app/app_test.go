package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenaapp_backend/database"
	"arenaapp_backend/internal/cache"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	h      *handlers.AppHandlers
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "e2e-secret"
	cfg.JWT.TTL = 60
	cfg.Catalog.SnapshotTTL = 300
	cfg.Admin.Email = "admin@test.local"
	cfg.Admin.Password = "super-secret"
	cfg.Admin.Name = "Administrador"

	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	router, h := SetupRouter(cfg, db, cache.NewMemory())
	require.NoError(t, h.AuthService.EnsureAdmin(db))

	return &testServer{router: router, h: h, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) []*http.Cookie {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@test.local",
		"password": "super-secret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/admin/bares", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/admin/bares", gin.H{"nombre": "Bar"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	w := s.do(t, http.MethodGet, "/api/v1/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]interface{}
	decode(t, w, &profile)
	assert.Equal(t, "admin@test.local", profile["email"])
	assert.Equal(t, "ADMIN", profile["rol"])
}

func TestAdminCRUDAndPublicFlow(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	// Create a published restaurant.
	w := s.do(t, http.MethodPost, "/api/v1/admin/restaurantes", gin.H{
		"nombre":       "Parrilla Norte",
		"zona":         "Norte",
		"tipos_comida": []string{"Parrilla"},
		"rango_precio": 2,
		"publicado":    true,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	decode(t, w, &created)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	// Public array shows it.
	w = s.do(t, http.MethodGet, "/api/v1/restaurantes/public", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]interface{}
	decode(t, w, &items)
	require.Len(t, items, 1)

	// Browse pipeline with a filter.
	w = s.do(t, http.MethodGet, "/api/v1/restaurantes/listado?zone=Norte", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items      []map[string]interface{} `json:"items"`
		Total      int                      `json:"total"`
		TotalPages int                      `json:"totalPages"`
	}
	decode(t, w, &page)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 1)

	// Update unpublishes it; the public array empties.
	w = s.do(t, http.MethodPut, "/api/v1/admin/restaurantes/"+id, gin.H{
		"nombre":    "Parrilla Norte",
		"publicado": false,
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/restaurantes/public", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = nil
	decode(t, w, &items)
	assert.Empty(t, items)

	// Delete.
	w = s.do(t, http.MethodDelete, "/api/v1/admin/restaurantes/"+id, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/restaurantes/"+id, nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnifiedSearchEndpoint(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	w := s.do(t, http.MethodPost, "/api/v1/admin/bares", gin.H{
		"nombre":    "Café Norte",
		"publicado": true,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/search?q=cafe", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []map[string]interface{} `json:"results"`
		Total   int                      `json:"total"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 1, resp.Total)
}

func TestFavoritesFlow(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	w := s.do(t, http.MethodPost, "/api/v1/admin/hoteles", gin.H{
		"nombre":    "Hotel del Mar",
		"publicado": true,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	decode(t, w, &created)
	id := created["id"].(string)

	// Anonymous toggles are rejected.
	w = s.do(t, http.MethodPost, "/api/v1/favoritos/hoteles", gin.H{"itemId": id}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Save, list, remove.
	w = s.do(t, http.MethodPost, "/api/v1/favoritos/hoteles", gin.H{"itemId": id}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/favoritos", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var sets map[string][]string
	decode(t, w, &sets)
	assert.Equal(t, []string{id}, sets["hoteles"])

	w = s.do(t, http.MethodDelete, "/api/v1/favoritos/hoteles/"+id, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/favoritos", nil, cookies)
	decode(t, w, &sets)
	assert.Empty(t, sets["hoteles"])
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	// Missing required name.
	w := s.do(t, http.MethodPost, "/api/v1/admin/bares", gin.H{"zona": "Norte"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown catalog type.
	w = s.do(t, http.MethodGet, "/api/v1/museos/public", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
