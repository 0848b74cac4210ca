package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/memory"
	"github.com/postpilot/postpilot/pkg/repository"
	"github.com/postpilot/postpilot/pkg/scheduler"
	"github.com/postpilot/postpilot/server/mocks"
)

// testServer wires a Server against permissive default mocks
type testServer struct {
	srv         *httptest.Server
	autopilot   *mocks.AutoPilotMock
	queue       *mocks.ReviewQueueMock
	content     *mocks.ContentStoreMock
	connections *mocks.ConnectionStoreMock
	memory      *mocks.MemoryManagerMock
	state       *mocks.StateStoreMock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		autopilot: &mocks.AutoPilotMock{
			EnableFunc:      func(ctx context.Context, intervalHours int) error { return nil },
			DisableFunc:     func(ctx context.Context) error { return nil },
			ConfigureFunc:   func(ctx context.Context, s scheduler.Settings) error { return nil },
			GenerateNowFunc: func(ctx context.Context) error { return nil },
			StatusFunc:      func() scheduler.AutoPilotStatus { return scheduler.AutoPilotStatus{} },
		},
		queue: &mocks.ReviewQueueMock{
			ListFunc:       func(ctx context.Context) ([]*domain.ContentItem, error) { return nil, nil },
			ApproveFunc:    func(ctx context.Context, id string, scheduledTime *time.Time) error { return nil },
			RejectFunc:     func(ctx context.Context, id string) error { return nil },
			ApproveAllFunc: func(ctx context.Context) (int, error) { return 0, nil },
			RejectAllFunc:  func(ctx context.Context) (int, error) { return 0, nil },
			EditFunc: func(ctx context.Context, id string, patch domain.ContentPatch) (*domain.ContentItem, error) {
				return &domain.ContentItem{ID: id}, nil
			},
			RegenerateFunc: func(ctx context.Context, id string) (*domain.ContentItem, error) {
				return &domain.ContentItem{ID: id}, nil
			},
		},
		content: &mocks.ContentStoreMock{
			ListItemsFunc: func(ctx context.Context, status domain.Status, limit int) ([]*domain.ContentItem, error) {
				return nil, nil
			},
			GetItemFunc: func(ctx context.Context, id string) (*domain.ContentItem, error) {
				return &domain.ContentItem{ID: id}, nil
			},
			DeleteItemFunc: func(ctx context.Context, id string) error { return nil },
		},
		connections: &mocks.ConnectionStoreMock{
			UpsertFunc: func(ctx context.Context, conn *domain.Connection) error { return nil },
			GetFunc: func(ctx context.Context, platform domain.Platform) (*domain.Connection, error) {
				return &domain.Connection{Platform: platform}, nil
			},
			AllFunc: func(ctx context.Context) ([]*domain.Connection, error) { return nil, nil },
		},
		memory: &mocks.MemoryManagerMock{
			ClearFunc:    func(category memory.Category) {},
			ClearAllFunc: func() {},
			SnapshotFunc: func() ([]byte, error) { return []byte("{}"), nil },
		},
		state: &mocks.StateStoreMock{
			SetFunc: func(ctx context.Context, namespace string, value []byte) error { return nil },
		},
	}

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "localhost:0", 30 * time.Second },
	}
	dispatch := &mocks.DispatchStatsMock{
		StatsFunc: func() scheduler.DispatcherStats { return scheduler.DispatcherStats{Published: 5} },
	}

	s := New(Config{
		Config:      cfg,
		AutoPilot:   ts.autopilot,
		Queue:       ts.queue,
		Content:     ts.content,
		Connections: ts.connections,
		Dispatch:    dispatch,
		Memory:      ts.memory,
		State:       ts.state,
		Version:     "test",
	})

	ts.srv = httptest.NewServer(s.router)
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestServer_Status(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodGet, "/api/v1/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Contains(t, status, "autopilot")
	assert.Contains(t, status, "dispatch")
	assert.JSONEq(t, `"test"`, string(status["version"]))
}

func TestServer_AutopilotEnable(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := ts.do(t, http.MethodPost, "/api/v1/autopilot/enable", map[string]int{"interval_hours": 12})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	calls := ts.autopilot.EnableCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 12, calls[0].IntervalHours)

	t.Run("empty body uses configured interval", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/autopilot/enable", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 0, ts.autopilot.EnableCalls()[1].IntervalHours)
	})

	t.Run("negative interval rejected", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/autopilot/enable", map[string]int{"interval_hours": -1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_AutopilotDisable(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := ts.do(t, http.MethodPost, "/api/v1/autopilot/disable", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, ts.autopilot.DisableCalls(), 1)
}

func TestServer_AutopilotConfig(t *testing.T) {
	ts := newTestServer(t)

	req := map[string]interface{}{
		"cadence":           "daily",
		"posting_frequency": map[string]int{"linkedin": 2, "email": 1},
		"auto_approve":      true,
	}
	resp, _ := ts.do(t, http.MethodPut, "/api/v1/autopilot/config", req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	calls := ts.autopilot.ConfigureCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.CadenceDaily, calls[0].S.Cadence)
	assert.Equal(t, 2, calls[0].S.PostingFrequency[domain.PlatformLinkedIn])
	require.NotNil(t, calls[0].S.AutoApprove)
	assert.True(t, *calls[0].S.AutoApprove)

	t.Run("validation error maps to 400", func(t *testing.T) {
		ts.autopilot.ConfigureFunc = func(ctx context.Context, s scheduler.Settings) error {
			return fmt.Errorf("unknown cadence")
		}
		resp, _ := ts.do(t, http.MethodPut, "/api/v1/autopilot/config", map[string]string{"cadence": "hourly"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_GenerateNow(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := ts.do(t, http.MethodPost, "/api/v1/autopilot/generate", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, ts.autopilot.GenerateNowCalls(), 1)

	t.Run("busy generator maps to 409", func(t *testing.T) {
		ts.autopilot.GenerateNowFunc = func(ctx context.Context) error {
			return fmt.Errorf("generation already in flight")
		}
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/autopilot/generate", nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestServer_Connections(t *testing.T) {
	ts := newTestServer(t)

	t.Run("connect", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodPost, "/api/v1/connections/linkedin", map[string]string{"handle": "@acme"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var conn domain.Connection
		require.NoError(t, json.Unmarshal(body, &conn))
		assert.True(t, conn.Connected)
		assert.Equal(t, "@acme", conn.Handle)
		assert.NotNil(t, conn.LastSync)

		calls := ts.connections.UpsertCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.PlatformLinkedIn, calls[0].Conn.Platform)
	})

	t.Run("disconnect", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, "/api/v1/connections/linkedin", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := ts.connections.UpsertCalls()
		last := calls[len(calls)-1]
		assert.False(t, last.Conn.Connected)
	})

	t.Run("unknown platform", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/connections/myspace", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/api/v1/connections", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, ts.connections.AllCalls(), 1)
	})
}

func TestServer_ReviewQueue(t *testing.T) {
	ts := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		ts.queue.ListFunc = func(ctx context.Context) ([]*domain.ContentItem, error) {
			return []*domain.ContentItem{{ID: "a"}, {ID: "b"}}, nil
		}
		resp, body := ts.do(t, http.MethodGet, "/api/v1/review", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var items []domain.ContentItem
		require.NoError(t, json.Unmarshal(body, &items))
		assert.Len(t, items, 2)
	})

	t.Run("approve with schedule", func(t *testing.T) {
		when := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/review/item-1/approve",
			map[string]string{"scheduled_time": when.Format(time.RFC3339)})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := ts.queue.ApproveCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "item-1", calls[0].Id)
		require.NotNil(t, calls[0].ScheduledTime)
		assert.Equal(t, when, calls[0].ScheduledTime.UTC())
	})

	t.Run("approve immediately", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/review/item-2/approve", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, ts.queue.ApproveCalls()[1].ScheduledTime)
	})

	t.Run("reject", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/review/item-3/reject", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "item-3", ts.queue.RejectCalls()[0].Id)
	})

	t.Run("approve all", func(t *testing.T) {
		ts.queue.ApproveAllFunc = func(ctx context.Context) (int, error) { return 4, nil }
		resp, body := ts.do(t, http.MethodPost, "/api/v1/review/approve-all", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"approved": 4}`, string(body))
	})

	t.Run("reject all", func(t *testing.T) {
		ts.queue.RejectAllFunc = func(ctx context.Context) (int, error) { return 2, nil }
		resp, body := ts.do(t, http.MethodPost, "/api/v1/review/reject-all", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"rejected": 2}`, string(body))
	})

	t.Run("edit", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPatch, "/api/v1/review/item-4", map[string]string{"body": "better text"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := ts.queue.EditCalls()
		require.Len(t, calls, 1)
		require.NotNil(t, calls[0].Patch.Body)
		assert.Equal(t, "better text", *calls[0].Patch.Body)
		assert.Nil(t, calls[0].Patch.Topic)
	})

	t.Run("regenerate", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/review/item-5/regenerate", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "item-5", ts.queue.RegenerateCalls()[0].Id)
	})

	t.Run("missing item maps to 404", func(t *testing.T) {
		ts.queue.RejectFunc = func(ctx context.Context, id string) error {
			return fmt.Errorf("get item %s: %w", id, repository.ErrNotFound)
		}
		resp, _ := ts.do(t, http.MethodPost, "/api/v1/review/ghost/reject", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Content(t *testing.T) {
	ts := newTestServer(t)

	t.Run("list with filters", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/api/v1/content?status=draft&limit=10", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := ts.content.ListItemsCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.StatusDraft, calls[0].Status)
		assert.Equal(t, 10, calls[0].Limit)
	})

	t.Run("bad limit", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/api/v1/content?limit=nope", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, "/api/v1/content/item-1", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var item domain.ContentItem
		require.NoError(t, json.Unmarshal(body, &item))
		assert.Equal(t, "item-1", item.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		ts.content.GetItemFunc = func(ctx context.Context, id string) (*domain.ContentItem, error) {
			return nil, fmt.Errorf("content item %s: %w", id, repository.ErrNotFound)
		}
		resp, _ := ts.do(t, http.MethodGet, "/api/v1/content/ghost", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, "/api/v1/content/item-2", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "item-2", ts.content.DeleteItemCalls()[0].Id)
	})
}

func TestServer_Memory(t *testing.T) {
	ts := newTestServer(t)

	t.Run("clear all", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, "/api/v1/memory", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, ts.memory.ClearAllCalls(), 1)
		require.Len(t, ts.state.SetCalls(), 1, "cleared memory is persisted")
		assert.Equal(t, repository.NamespaceMemory, ts.state.SetCalls()[0].Namespace)
	})

	t.Run("clear category", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, "/api/v1/memory/topics", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := ts.memory.ClearCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, memory.CategoryTopics, calls[0].Category)
	})

	t.Run("unknown category", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodDelete, "/api/v1/memory/colors", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Len(t, ts.memory.ClearCalls(), 1, "nothing cleared")
	})
}

func TestServer_Ping(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}
