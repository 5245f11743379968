package workers

import (
	"context"

	"arenaapp_backend/internal/logger"
	"arenaapp_backend/internal/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SnapshotWorker rebuilds the published catalog snapshots on a schedule, so
// the cache stays warm between admin mutations.
type SnapshotWorker struct {
	catalog  services.CatalogService
	db       *gorm.DB
	schedule string
	cron     *cron.Cron
}

func NewSnapshotWorker(catalog services.CatalogService, db *gorm.DB, schedule string) *SnapshotWorker {
	return &SnapshotWorker{
		catalog:  catalog,
		db:       db,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start warms the cache once, then schedules periodic refreshes.
func (w *SnapshotWorker) Start() error {
	w.run()

	if _, err := w.cron.AddFunc(w.schedule, w.run); err != nil {
		return err
	}
	w.cron.Start()
	logger.Info("snapshot worker started", "schedule", w.schedule)
	return nil
}

func (w *SnapshotWorker) Stop() {
	w.cron.Stop()
}

func (w *SnapshotWorker) run() {
	err := w.catalog.RefreshSnapshots(context.Background(), w.db)
	logger.WorkerLog("snapshot", "refresh", err)
}
