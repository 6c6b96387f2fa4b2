package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/config"
	"github.com/dioadam27-sketch/SIMPDB/internal/model"
)

// ErrNotConfigured is returned when no endpoint URL has been set.
var ErrNotConfigured = errors.New("sheet endpoint not configured")

// Action is a write operation understood by the endpoint.
type Action string

const (
	ActionAdd     Action = "add"
	ActionBulkAdd Action = "bulk_add"
	ActionDelete  Action = "delete"
	ActionUpdate  Action = "update"
)

// Table is a logical table on the endpoint.
type Table string

const (
	TableCourses   Table = "courses"
	TableLecturers Table = "lecturers"
	TableRooms     Table = "rooms"
	TableClasses   Table = "classes"
	TableSchedule  Table = "schedule"
)

// Snapshot is the full remote state, one list per table.
type Snapshot struct {
	Courses   []model.Course
	Lecturers []model.Lecturer
	Rooms     []model.Room
	Classes   []model.ClassName
	Schedule  []model.ScheduleItem
}

// Status describes the last known health of the remote endpoint.
type Status struct {
	Configured bool      `json:"configured"`
	Connected  bool      `json:"connected"`
	LastSyncAt time.Time `json:"last_sync_at"`
	LastError  string    `json:"last_error,omitempty"`
}

// Syncer is the remote-store contract consumed by the services.
//
// Writes are fire-and-forget: the local store is the source of truth
// for the session, a failed persist is logged and flips the status to
// disconnected, and nothing is ever rolled back.
type Syncer interface {
	FetchAll(ctx context.Context) (*Snapshot, error)
	WriteAsync(action Action, table Table, data interface{}, id string)
	Status() Status
}

// Client talks to the spreadsheet web-app endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger

	mu     sync.Mutex
	status Status
}

// NewClient creates a sheet client. An empty URL is allowed: the
// system then runs purely on local state and every sync reports
// ErrNotConfigured.
func NewClient(cfg *config.SheetConfig, logger *zap.Logger) *Client {
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		status:     Status{Configured: cfg.URL != ""},
	}
}

// FetchAll reads every table in a single request.
func (c *Client) FetchAll(ctx context.Context) (*Snapshot, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	// Cache buster: the endpoint sits behind an aggressive CDN cache.
	url := fmt.Sprintf("%s?t=%d", c.url, time.Now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.markFailure(err)
		return nil, fmt.Errorf("fetch from sheet failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("fetch from sheet failed: status %d", resp.StatusCode)
		c.markFailure(err)
		return nil, err
	}

	var raw rawSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.markFailure(err)
		return nil, fmt.Errorf("decode sheet response: %w", err)
	}

	c.markSuccess()
	return raw.toSnapshot(), nil
}

// writeRequest is the POST body shape the endpoint expects.
type writeRequest struct {
	Action Action      `json:"action"`
	Table  Table       `json:"table"`
	Data   interface{} `json:"data,omitempty"`
	ID     string      `json:"id,omitempty"`
}

// WriteAsync persists a mutation without blocking the caller. The
// response is read only to update the connectivity status.
func (c *Client) WriteAsync(action Action, table Table, data interface{}, id string) {
	if c.url == "" {
		return
	}

	body, err := json.Marshal(writeRequest{Action: action, Table: table, Data: data, ID: id})
	if err != nil {
		c.logger.Error("marshal sheet write failed",
			zap.String("action", string(action)),
			zap.String("table", string(table)),
			zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			c.markFailure(err)
			return
		}
		// The Apps Script endpoint only parses simple requests, so the
		// body goes out as text/plain like the original client sent it.
		req.Header.Set("Content-Type", "text/plain;charset=utf-8")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.markFailure(err)
			c.logger.Warn("sheet write failed",
				zap.String("action", string(action)),
				zap.String("table", string(table)),
				zap.Error(err))
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= 400 {
			err := fmt.Errorf("sheet write status %d", resp.StatusCode)
			c.markFailure(err)
			c.logger.Warn("sheet write rejected",
				zap.String("action", string(action)),
				zap.String("table", string(table)),
				zap.Int("status", resp.StatusCode))
			return
		}

		c.markSuccess()
		c.logger.Debug("sheet write ok",
			zap.String("action", string(action)),
			zap.String("table", string(table)))
	}()
}

// Status returns the last known endpoint health.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Client) markSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Connected = true
	c.status.LastSyncAt = time.Now()
	c.status.LastError = ""
}

func (c *Client) markFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Connected = false
	c.status.LastError = err.Error()
}
