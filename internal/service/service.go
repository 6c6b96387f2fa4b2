package service

import (
	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/config"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
	"github.com/dioadam27-sketch/SIMPDB/pkg/jwt"
	"github.com/dioadam27-sketch/SIMPDB/pkg/redis"
)

// Service aggregates every service of the application.
type Service struct {
	Auth       AuthService
	Master     MasterService
	Schedule   ScheduleService
	Portal     PortalService
	Monitoring MonitoringService
	Export     ExportService
	Sync       SyncService
}

// NewService wires the service aggregate. rdb may be nil when Redis
// is unavailable; only logout degrades.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	syncer sheet.Syncer,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, &cfg.Auth, logger),
		Master:     NewMasterService(repo, syncer, logger),
		Schedule:   NewScheduleService(repo, syncer, cfg.Feature.StrictImport, logger),
		Portal:     NewPortalService(repo, syncer, logger),
		Monitoring: NewMonitoringService(repo, logger),
		Export:     NewExportService(repo, logger),
		Sync:       NewSyncService(repo, syncer, logger),
	}
}
