package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/webhook"
)

// AskRequest is the request body for POST /api/ask.
type AskRequest struct {
	SessionID  string `json:"sessionId"`
	WebhookURL string `json:"webhookUrl"`
	Question   string `json:"question"`
}

// AnalysisView mirrors a chat.AnalysisRecord plus the display
// rendering of its result, so the page never re-derives it.
type AnalysisView struct {
	ID        int64          `json:"id"`
	Question  string         `json:"question"`
	Result    webhook.Result `json:"result"`
	Rendered  string         `json:"rendered"`
	Timestamp time.Time      `json:"timestamp"`
}

// SessionState is the full session snapshot returned to the page:
// messages in insertion order, analyses newest first.
type SessionState struct {
	SessionID string         `json:"sessionId"`
	Busy      bool           `json:"busy"`
	Messages  []chat.Message `json:"messages"`
	Analyses  []AnalysisView `json:"analyses"`
}

// AskResponse is the response body for POST /api/ask.
type AskResponse struct {
	OK     bool         `json:"ok"`
	Notice string       `json:"notice,omitempty"`
	State  SessionState `json:"state"`
}

// RegisterRoutes registers the API routes on a router
func RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/ask", HandleAsk).Methods("POST")
	router.HandleFunc("/api/session/{id}", HandleGetSession).Methods("GET")
	router.HandleFunc("/api/health", HandleHealth).Methods("GET")
}

// HandleAsk runs one webhook exchange for a session and returns the
// updated session state.
func HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store := GetStore()
	sess, ok := store.Session(req.SessionID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, chat.ErrEmptyQuestion.Error())
		return
	}
	url := strings.TrimSpace(req.WebhookURL)
	if url == "" {
		writeError(w, http.StatusBadRequest, chat.MissingURLNotice)
		return
	}

	userMsg, err := sess.Begin(req.Question, time.Now())
	if err == chat.ErrBusy {
		writeError(w, http.StatusConflict, "an exchange is already in progress")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := store.Client().Ask(r.Context(), url, userMsg.Text, userMsg.Time)
	resp := AskResponse{OK: err == nil}
	if err != nil {
		sess.Fail(time.Now())
		resp.Notice = "The webhook exchange failed."
		log.Printf("ask: webhook exchange failed: %v", err)
	} else {
		sess.Complete(userMsg.Text, result, time.Now())
	}
	resp.State = snapshotState(req.SessionID, sess)
	writeJSON(w, http.StatusOK, resp)
}

// HandleGetSession returns the current state of a session.
func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok := GetStore().Session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	writeJSON(w, http.StatusOK, snapshotState(id, sess))
}

// HandleHealth is a simple liveness probe.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func snapshotState(id string, sess *chat.Session) SessionState {
	recs := sess.Analyses()
	state := SessionState{
		SessionID: id,
		Busy:      sess.Busy(),
		Messages:  sess.Messages(),
		Analyses:  make([]AnalysisView, 0, len(recs)),
	}
	for i := len(recs) - 1; i >= 0; i-- {
		rec := recs[i]
		state.Analyses = append(state.Analyses, AnalysisView{
			ID:        rec.ID,
			Question:  rec.Question,
			Result:    rec.Result,
			Rendered:  rec.Result.Render(),
			Timestamp: rec.Time,
		})
	}
	return state
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
