package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/memory"
	"github.com/postpilot/postpilot/pkg/repository"
	"github.com/postpilot/postpilot/pkg/scheduler"
)

// autopilotEnableHandler arms the recurring generation timer
func (s *Server) autopilotEnableHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IntervalHours int `json:"interval_hours"`
	}
	if err := decodeBody(r, &req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.IntervalHours < 0 {
		RenderError(w, r, fmt.Errorf("interval_hours must not be negative"), http.StatusBadRequest)
		return
	}

	if err := s.autopilot.Enable(r.Context(), req.IntervalHours); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.autopilot.Status())
}

// autopilotDisableHandler disarms the timer
func (s *Server) autopilotDisableHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.autopilot.Disable(r.Context()); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.autopilot.Status())
}

// autopilotConfigHandler updates cadence, quotas and approval mode
func (s *Server) autopilotConfigHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cadence          string         `json:"cadence,omitempty"`
		PostingFrequency map[string]int `json:"posting_frequency,omitempty"`
		AutoApprove      *bool          `json:"auto_approve,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	settings := scheduler.Settings{
		Cadence:     domain.Cadence(req.Cadence),
		AutoApprove: req.AutoApprove,
	}
	if req.PostingFrequency != nil {
		settings.PostingFrequency = make(map[domain.Platform]int, len(req.PostingFrequency))
		for platform, count := range req.PostingFrequency {
			settings.PostingFrequency[domain.Platform(platform)] = count
		}
	}

	if err := s.autopilot.Configure(r.Context(), settings); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.autopilot.Status())
}

// generateNowHandler triggers an immediate generation batch
func (s *Server) generateNowHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.autopilot.GenerateNow(r.Context()); err != nil {
		RenderError(w, r, err, http.StatusConflict)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.autopilot.Status())
}

// connectionsListHandler lists all platform connections
func (s *Server) connectionsListHandler(w http.ResponseWriter, r *http.Request) {
	conns, err := s.connections.All(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, conns)
}

// connectHandler marks a platform as connected
func (s *Server) connectHandler(w http.ResponseWriter, r *http.Request) {
	platform := domain.Platform(r.PathValue("platform"))
	if !domain.ValidPlatform(platform) {
		RenderError(w, r, fmt.Errorf("unknown platform %q", platform), http.StatusBadRequest)
		return
	}

	var req struct {
		Handle string `json:"handle,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	conn := &domain.Connection{Platform: platform, Connected: true, Handle: req.Handle, LastSync: &now}
	if err := s.connections.Upsert(r.Context(), conn); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] connected platform %s", platform)
	RenderJSON(w, r, http.StatusOK, conn)
}

// disconnectHandler marks a platform as disconnected. Scheduled items
// targeting it are left alone and will fail delivery until reconnect.
func (s *Server) disconnectHandler(w http.ResponseWriter, r *http.Request) {
	platform := domain.Platform(r.PathValue("platform"))
	if !domain.ValidPlatform(platform) {
		RenderError(w, r, fmt.Errorf("unknown platform %q", platform), http.StatusBadRequest)
		return
	}

	conn := &domain.Connection{Platform: platform, Connected: false}
	if err := s.connections.Upsert(r.Context(), conn); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] disconnected platform %s", platform)
	RenderJSON(w, r, http.StatusOK, conn)
}

// reviewListHandler lists items awaiting review
func (s *Server) reviewListHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.queue.List(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// approveHandler approves one staged item, optionally at a given time
func (s *Server) approveHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := s.queue.Approve(r.Context(), id, req.ScheduledTime); err != nil {
		RenderError(w, r, err, queueErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"approved": id})
}

// rejectHandler rejects and removes one staged item
func (s *Server) rejectHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.queue.Reject(r.Context(), id); err != nil {
		RenderError(w, r, err, queueErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"rejected": id})
}

// approveAllHandler approves the whole queue as of the request
func (s *Server) approveAllHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.queue.ApproveAll(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"approved": count})
}

// rejectAllHandler rejects the whole queue as of the request
func (s *Server) rejectAllHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.queue.RejectAll(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"rejected": count})
}

// editHandler applies an operator patch to a staged item
func (s *Server) editHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic         *string    `json:"topic,omitempty"`
		Body          *string    `json:"body,omitempty"`
		MediaRef      *string    `json:"media_ref,omitempty"`
		ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	patch := domain.ContentPatch{Topic: req.Topic, Body: req.Body, MediaRef: req.MediaRef, ScheduledTime: req.ScheduledTime}
	item, err := s.queue.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		RenderError(w, r, err, queueErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, item)
}

// regenerateHandler replaces a staged item's text with a fresh take
func (s *Server) regenerateHandler(w http.ResponseWriter, r *http.Request) {
	item, err := s.queue.Regenerate(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, queueErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, item)
}

// contentListHandler lists items, optionally filtered by status
func (s *Server) contentListHandler(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(r.URL.Query().Get("status"))

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			RenderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = n
	}

	items, err := s.content.ListItems(r.Context(), status, limit)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// contentGetHandler returns one item by ID
func (s *Server) contentGetHandler(w http.ResponseWriter, r *http.Request) {
	item, err := s.content.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, item)
}

// contentDeleteHandler removes one item
func (s *Server) contentDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.content.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"deleted": id})
}

// memoryClearAllHandler wipes the whole dedup memory
func (s *Server) memoryClearAllHandler(w http.ResponseWriter, r *http.Request) {
	s.memory.ClearAll()
	if err := s.persistMemory(r); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] dedup memory cleared")
	RenderJSON(w, r, http.StatusOK, rest.JSON{"cleared": "all"})
}

// memoryClearHandler wipes one dedup category
func (s *Server) memoryClearHandler(w http.ResponseWriter, r *http.Request) {
	category := memory.Category(r.PathValue("category"))
	if !validCategory(category) {
		RenderError(w, r, fmt.Errorf("unknown category %q", category), http.StatusBadRequest)
		return
	}

	s.memory.Clear(category)
	if err := s.persistMemory(r); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] dedup memory category %s cleared", category)
	RenderJSON(w, r, http.StatusOK, rest.JSON{"cleared": string(category)})
}

// persistMemory snapshots the dedup memory into the state store
func (s *Server) persistMemory(r *http.Request) error {
	snap, err := s.memory.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot memory: %w", err)
	}
	if err := s.state.Set(r.Context(), repository.NamespaceMemory, snap); err != nil {
		return fmt.Errorf("persist memory: %w", err)
	}
	return nil
}

// decodeBody parses an optional JSON request body; an empty body is fine
func decodeBody(r *http.Request, out interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// queueErrorCode maps queue errors to HTTP status codes
func queueErrorCode(err error) int {
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusConflict
}

func validCategory(c memory.Category) bool {
	for _, known := range memory.Categories() {
		if c == known {
			return true
		}
	}
	return false
}
