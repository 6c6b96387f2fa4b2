package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.SheetConfig{URL: url, Timeout: 2 * time.Second}, zap.NewNop())
}

// ═══════════════════════════════════════════════════════════
// FetchAll
// ═══════════════════════════════════════════════════════════

func TestClient_FetchAll_CoercesLooseCells(t *testing.T) {
	// Numeric ids and string numbers, as the spreadsheet serves them.
	payload := `{
		"courses": [{"id": 101, "code": "IF101", "name": "Algoritma", "credits": "3"}],
		"lecturers": [{"id": "l-1", "name": "Budi Santoso", "nip": 198001012005011001}],
		"rooms": [{"id": "r-1", "name": "R1", "capacity": 40}, {"id": "r-2", "name": "R2", "capacity": "abc"}],
		"classes": [{"id": "cls-1", "name": "PDB01"}],
		"schedule": [{"id": "sch-1", "courseId": 101, "lecturerId": "", "roomId": "r-1", "className": "PDB01", "day": "Senin", "timeSlot": "07:00 - 08:40"}]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("t") == "" {
			t.Error("expected cache-buster query param")
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	snap, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if snap.Courses[0].ID != "101" || snap.Courses[0].Credits != 3 {
		t.Errorf("course coercion wrong: %+v", snap.Courses[0])
	}
	if snap.Lecturers[0].NIP != "198001012005011001" {
		t.Errorf("numeric NIP should become a string, got %q", snap.Lecturers[0].NIP)
	}
	// Unreadable numeric cell degrades to zero.
	if snap.Rooms[1].Capacity != 0 {
		t.Errorf("expected unreadable capacity 0, got %d", snap.Rooms[1].Capacity)
	}
	if snap.Schedule[0].CourseID != "101" || snap.Schedule[0].LecturerID != "" {
		t.Errorf("schedule coercion wrong: %+v", snap.Schedule[0])
	}

	st := c.Status()
	if !st.Configured || !st.Connected || st.LastSyncAt.IsZero() {
		t.Errorf("status after success wrong: %+v", st)
	}
}

func TestClient_FetchAll_NotConfigured(t *testing.T) {
	c := newTestClient("")
	if _, err := c.FetchAll(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if c.Status().Configured {
		t.Error("empty URL must report unconfigured")
	}
}

func TestClient_FetchAll_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}

	st := c.Status()
	if st.Connected || st.LastError == "" {
		t.Errorf("status after failure wrong: %+v", st)
	}
}

func TestClient_FetchAll_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>login page</html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.FetchAll(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

// ═══════════════════════════════════════════════════════════
// WriteAsync
// ═══════════════════════════════════════════════════════════

func TestClient_WriteAsync_Payload(t *testing.T) {
	var mu sync.Mutex
	var got writeRequest
	var contentType string
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode write body: %v", err)
		}
		close(done)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.WriteAsync(ActionAdd, TableSchedule, map[string]string{"id": "sch-1"}, "")

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("write never reached the endpoint")
	}

	mu.Lock()
	defer mu.Unlock()
	if contentType != "text/plain;charset=utf-8" {
		t.Errorf("unexpected content type %q", contentType)
	}
	if got.Action != ActionAdd || got.Table != TableSchedule {
		t.Errorf("unexpected payload: %+v", got)
	}

	waitConnected(t, c, true)
}

func TestClient_WriteAsync_DeleteCarriesID(t *testing.T) {
	var mu sync.Mutex
	var got writeRequest
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		json.NewDecoder(r.Body).Decode(&got)
		close(done)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.WriteAsync(ActionDelete, TableCourses, nil, "c-1")

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("write never reached the endpoint")
	}

	mu.Lock()
	defer mu.Unlock()
	if got.Action != ActionDelete || got.Table != TableCourses || got.ID != "c-1" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestClient_WriteAsync_RejectionFlipsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.WriteAsync(ActionAdd, TableRooms, map[string]string{"id": "r-1"}, "")

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if st := c.Status(); st.LastError != "" {
			if st.Connected {
				t.Errorf("rejected write must flip to disconnected: %+v", st)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("failure never recorded: %+v", c.Status())
}

func TestClient_WriteAsync_NotConfiguredIsNoop(t *testing.T) {
	c := newTestClient("")
	// Must not panic or block.
	c.WriteAsync(ActionAdd, TableRooms, map[string]string{"id": "r-1"}, "")
}

// waitConnected polls the async status until it reaches want.
func waitConnected(t *testing.T, c *Client, want bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if c.Status().Connected == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("status never reached connected=%v: %+v", want, c.Status())
}
