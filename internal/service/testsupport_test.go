package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/internal/model"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
)

// ── Test helpers ──

// fakeSyncer records writes and serves a canned snapshot.
type fakeSyncer struct {
	mu       sync.Mutex
	writes   []fakeWrite
	snapshot *sheet.Snapshot
	fetchErr error
	status   sheet.Status
}

type fakeWrite struct {
	action sheet.Action
	table  sheet.Table
	data   interface{}
	id     string
}

func (f *fakeSyncer) FetchAll(ctx context.Context) (*sheet.Snapshot, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.snapshot, nil
}

func (f *fakeSyncer) WriteAsync(action sheet.Action, table sheet.Table, data interface{}, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, fakeWrite{action: action, table: table, data: data, id: id})
}

func (f *fakeSyncer) Status() sheet.Status {
	return f.status
}

func (f *fakeSyncer) lastWrite() (fakeWrite, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return fakeWrite{}, false
	}
	return f.writes[len(f.writes)-1], true
}

func (f *fakeSyncer) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func setupTestStore() (*repository.Repository, *fakeSyncer) {
	return repository.NewMemory(), &fakeSyncer{}
}

// seedMasterData loads two courses, two lecturers, two rooms and two
// class sections.
func seedMasterData(t *testing.T, repo *repository.Repository) {
	t.Helper()
	ctx := context.Background()

	courses := []model.Course{
		{ID: "c-1", Code: "IF101", Name: "Algoritma", Credits: 3},
		{ID: "c-2", Code: "IF102", Name: "Basis Data", Credits: 3},
	}
	if err := repo.Course.CreateBatch(ctx, courses); err != nil {
		t.Fatalf("seed courses: %v", err)
	}

	lecturers := []model.Lecturer{
		{ID: "l-1", Name: "Budi Santoso", NIP: "198001012005011001", Position: "Lektor", Expertise: "Algoritma"},
		{ID: "l-2", Name: "Siti Rahma", NIP: "198202022006022002", Position: "Asisten Ahli", Expertise: "Basis Data"},
	}
	if err := repo.Lecturer.CreateBatch(ctx, lecturers); err != nil {
		t.Fatalf("seed lecturers: %v", err)
	}

	rooms := []model.Room{
		{ID: "r-1", Name: "R1", Capacity: 40},
		{ID: "r-2", Name: "R2", Capacity: 30},
	}
	if err := repo.Room.CreateBatch(ctx, rooms); err != nil {
		t.Fatalf("seed rooms: %v", err)
	}

	classes := []model.ClassName{
		{ID: "cls-1", Name: "PDB01"},
		{ID: "cls-2", Name: "PDB02"},
	}
	if err := repo.Class.CreateBatch(ctx, classes); err != nil {
		t.Fatalf("seed classes: %v", err)
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
