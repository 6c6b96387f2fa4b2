package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/dto"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
)

// SyncService owns the pull side of remote persistence: a refresh
// replaces the whole local snapshot with the remote one,
// last-writer-wins at the granularity of everything. There is no
// per-record reconciliation.
type SyncService interface {
	// Refresh fetches all tables and swaps the local store.
	Refresh(ctx context.Context) (*dto.SyncRefreshResponse, error)
	// Status reports remote-endpoint health.
	Status() dto.SyncStatusResponse
}

type syncService struct {
	repo   *repository.Repository
	syncer sheet.Syncer
	logger *zap.Logger
}

// NewSyncService creates a SyncService instance.
func NewSyncService(repo *repository.Repository, syncer sheet.Syncer, logger *zap.Logger) SyncService {
	return &syncService{repo: repo, syncer: syncer, logger: logger}
}

func (s *syncService) Refresh(ctx context.Context) (*dto.SyncRefreshResponse, error) {
	snap, err := s.syncer.FetchAll(ctx)
	if err != nil {
		s.logger.Warn("refresh from sheet failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Course.ReplaceAll(ctx, snap.Courses); err != nil {
		return nil, err
	}
	if err := s.repo.Lecturer.ReplaceAll(ctx, snap.Lecturers); err != nil {
		return nil, err
	}
	if err := s.repo.Room.ReplaceAll(ctx, snap.Rooms); err != nil {
		return nil, err
	}
	// An empty remote class table keeps the seeded PDB defaults.
	if len(snap.Classes) > 0 {
		if err := s.repo.Class.ReplaceAll(ctx, snap.Classes); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Schedule.ReplaceAll(ctx, snap.Schedule); err != nil {
		return nil, err
	}

	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("local store refreshed from sheet",
		zap.Int("courses", len(snap.Courses)),
		zap.Int("lecturers", len(snap.Lecturers)),
		zap.Int("rooms", len(snap.Rooms)),
		zap.Int("classes", len(classes)),
		zap.Int("schedule_items", len(snap.Schedule)))

	return &dto.SyncRefreshResponse{
		Courses:       len(snap.Courses),
		Lecturers:     len(snap.Lecturers),
		Rooms:         len(snap.Rooms),
		Classes:       len(classes),
		ScheduleItems: len(snap.Schedule),
	}, nil
}

func (s *syncService) Status() dto.SyncStatusResponse {
	st := s.syncer.Status()
	return dto.SyncStatusResponse{
		Configured: st.Configured,
		Connected:  st.Connected,
		LastSyncAt: st.LastSyncAt,
		LastError:  st.LastError,
	}
}
