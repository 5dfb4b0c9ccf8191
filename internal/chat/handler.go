package chat

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/polymathcode/leadchat/internal/dialogue"
	"github.com/polymathcode/leadchat/internal/observability/metrics"
	"github.com/polymathcode/leadchat/internal/session"
	"github.com/polymathcode/leadchat/pkg/logging"
)

//go:embed widget.js
var widgetJS []byte

// notifyTimeout bounds the background lead email so a stalled provider cannot
// leak goroutines; it never affects the already-returned chat reply.
const notifyTimeout = 30 * time.Second

// LeadNotifier dispatches a completed lead. Implementations must absorb their
// own failures; the chat turn does not wait on the outcome.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, s *session.Session)
}

// Handler binds the session store, dialogue engine and lead notifier to the
// HTTP surface: one POST per user turn.
type Handler struct {
	store    session.Store
	engine   *dialogue.Engine
	notifier LeadNotifier
	metrics  *metrics.ChatMetrics
	logger   *logging.Logger
}

// NewHandler creates a chat handler.
func NewHandler(store session.Store, engine *dialogue.Engine, notifier LeadNotifier, m *metrics.ChatMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:    store,
		engine:   engine,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse is the reply for one turn.
type ChatResponse struct {
	Response     string `json:"response"`
	SessionID    string `json:"sessionId"`
	IsEscalation bool   `json:"isEscalation"`
}

// HandleChat processes one user turn.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("chat: failed to decode request", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// A missing or unknown session id is never an error; it starts a new
	// conversation.
	s, err := h.store.GetOrCreate(r.Context(), req.SessionID)
	if err != nil {
		h.logger.Error("chat: failed to resolve session", "error", err, "session_id", req.SessionID)
		http.Error(w, "failed to resolve session", http.StatusInternalServerError)
		return
	}

	res := h.engine.HandleTurn(s, req.Message)

	if err := h.store.Put(r.Context(), s); err != nil {
		// The reply is still valid; the next turn simply starts from the last
		// persisted state.
		h.logger.Error("chat: failed to persist session", "error", err, "session_id", s.ID)
	}

	h.metrics.ObserveTurn(string(s.Stage), res.Escalation)

	h.logger.Info("chat: turn handled",
		"session_id", s.ID,
		"stage", s.Stage,
		"escalation", res.Escalation,
		"lead_complete", res.LeadComplete,
	)

	if res.LeadComplete {
		h.metrics.ObserveLeadCompleted()
		h.dispatchLead(s)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ChatResponse{
		Response:     res.Reply,
		SessionID:    s.ID,
		IsEscalation: res.Escalation,
	})
}

// dispatchLead fires the notification on a detached goroutine so mail-provider
// latency never shows up as chat latency. The session is cloned because later
// turns keep mutating the original.
func (h *Handler) dispatchLead(s *session.Session) {
	if h.notifier == nil {
		return
	}
	lead := s.Clone()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		h.notifier.NotifyLead(ctx, lead)
	}()
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Server is awake"))
}

// HandleWidgetJS serves the embeddable chat widget.
func (h *Handler) HandleWidgetJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(widgetJS)
}
