package handler

import "github.com/dioadam27-sketch/SIMPDB/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Master     *MasterHandler
	Schedule   *ScheduleHandler
	Portal     *PortalHandler
	Monitoring *MonitoringHandler
	Export     *ExportHandler
	Sync       *SyncHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Master:     NewMasterHandler(svc.Master),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Portal:     NewPortalHandler(svc.Portal),
		Monitoring: NewMonitoringHandler(svc.Monitoring),
		Export:     NewExportHandler(svc.Export),
		Sync:       NewSyncHandler(svc.Sync),
	}
}
