package router

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oppd-health/whatsapp-intake/internal/archive"
	"github.com/oppd-health/whatsapp-intake/internal/intake"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// simulateHandler runs a conversation turn without the WhatsApp transport.
// Development only; guarded by a shared token.
type simulateHandler struct {
	intake *intake.Service
	token  string
	logger *logging.Logger
}

type simulateRequest struct {
	Identity string `json:"identity"`
	Text     string `json:"text"`
}

type simulateResponse struct {
	Message      string   `json:"message"`
	QuickReplies []string `json:"quickReplies,omitempty"`
	State        string   `json:"state"`
}

func (h *simulateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Dev-Token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Identity == "" {
		http.Error(w, "identity and text required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	out, err := h.intake.ProcessUtterance(ctx, req.Identity, req.Text)
	if err != nil {
		h.logger.Error("simulate turn failed", "identity", req.Identity, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(simulateResponse{
		Message:      out.Message,
		QuickReplies: out.QuickReplies,
		State:        string(out.State),
	})
}

// adminIntakeHandler exposes the current record and recent archived turns
// for one identity.
type adminIntakeHandler struct {
	intake  *intake.Service
	archive *archive.Store
	logger  *logging.Logger
}

type adminIntakeResponse struct {
	Record        *intake.Record `json:"record"`
	ArchivedTurns []archive.Turn `json:"archivedTurns,omitempty"`
}

func (h *adminIntakeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	if identity == "" {
		http.Error(w, "identity required", http.StatusBadRequest)
		return
	}

	rec, err := h.intake.Snapshot(r.Context(), identity)
	if err != nil {
		h.logger.Error("admin snapshot failed", "identity", identity, "error", err)
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	resp := adminIntakeResponse{Record: rec}
	if h.archive != nil {
		limit := 100
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		turns, err := h.archive.ListTurns(r.Context(), identity, limit)
		if err != nil {
			h.logger.Warn("admin archive lookup failed", "identity", identity, "error", err)
		} else {
			resp.ArchivedTurns = turns
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
