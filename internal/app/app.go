package app

import (
	"fmt"

	"arenaapp_backend/database"
	"arenaapp_backend/internal/cache"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/handlers"
	"arenaapp_backend/internal/logger"
	"arenaapp_backend/internal/middleware"
	"arenaapp_backend/internal/routes"
	"arenaapp_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupRouter builds the full HTTP engine over an already-open database.
// Split out of Run so tests can mount it on an in-memory database.
func SetupRouter(cfg *config.Config, db *gorm.DB, store cache.Store) (*gin.Engine, *handlers.AppHandlers) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.DBMiddleware(db))

	h := handlers.NewAppHandlers(store)
	routes.Register(router, h)

	return router, h
}

// Run boots the whole application: config, logging, database, cache, seed,
// background worker, HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var store cache.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = cache.NewRedis(client)
		logger.Info("snapshot cache backed by redis", "addr", cfg.Redis.Addr)
	} else {
		store = cache.NewMemory()
		logger.Info("snapshot cache in memory")
	}

	router, h := SetupRouter(cfg, db, store)

	if err := h.AuthService.EnsureAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	worker := workers.NewSnapshotWorker(h.CatalogService, db, cfg.Catalog.RefreshSchedule)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start snapshot worker: %w", err)
	}
	defer worker.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr)
	return router.Run(addr)
}
