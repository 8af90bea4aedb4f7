package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/schardosin/askhook/pkg/chat"
	"github.com/schardosin/askhook/pkg/webhook"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store := GetStore()
	store.Configure(webhook.NewClient(0), "", "")
	return store
}

func postAsk(t *testing.T, body AskRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/ask", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	HandleAsk(rec, req)
	return rec
}

func decodeAskResponse(t *testing.T, rec *httptest.ResponseRecorder) AskResponse {
	t.Helper()
	var resp AskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandleAskUnknownSession(t *testing.T) {
	setupStore(t)

	rec := postAsk(t, AskRequest{SessionID: "no-such-session", WebhookURL: "http://example.com", Question: "q"})

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleAskInvalidBody(t *testing.T) {
	setupStore(t)

	req := httptest.NewRequest("POST", "/api/ask", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	HandleAsk(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAskEmptyQuestion(t *testing.T) {
	store := setupStore(t)
	id := store.CreateSession()

	rec := postAsk(t, AskRequest{SessionID: id, WebhookURL: "http://example.com", Question: "   "})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	sess, _ := store.Session(id)
	if got := len(sess.Messages()); got != 0 {
		t.Errorf("expected no messages, got %d", got)
	}
}

func TestHandleAskMissingURL(t *testing.T) {
	store := setupStore(t)
	id := store.CreateSession()

	rec := postAsk(t, AskRequest{SessionID: id, WebhookURL: "  ", Question: "q"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["error"] != chat.MissingURLNotice {
		t.Errorf("expected the missing-URL notice, got %q", body["error"])
	}
	sess, _ := store.Session(id)
	if got := len(sess.Messages()); got != 0 {
		t.Errorf("expected no messages, got %d", got)
	}
}

func TestHandleAskSuccess(t *testing.T) {
	var received webhook.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode webhook request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score": 42}`))
	}))
	defer server.Close()

	store := setupStore(t)
	id := store.CreateSession()

	rec := postAsk(t, AskRequest{SessionID: id, WebhookURL: server.URL, Question: "  rate this  "})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if received.Question != "rate this" {
		t.Errorf("expected the trimmed question on the wire, got %q", received.Question)
	}

	resp := decodeAskResponse(t, rec)
	if !resp.OK {
		t.Error("expected ok response")
	}
	if len(resp.State.Messages) != 2 {
		t.Fatalf("expected two messages, got %d", len(resp.State.Messages))
	}
	if resp.State.Messages[0].Origin != chat.OriginUser {
		t.Errorf("expected user message first, got %q", resp.State.Messages[0].Origin)
	}
	if resp.State.Messages[1].Text != chat.DefaultAckText {
		t.Errorf("expected the ack message, got %q", resp.State.Messages[1].Text)
	}
	if len(resp.State.Analyses) != 1 {
		t.Fatalf("expected one analysis, got %d", len(resp.State.Analyses))
	}
	if want := "{\n  \"score\": 42\n}"; resp.State.Analyses[0].Rendered != want {
		t.Errorf("expected indented JSON rendering, got %q", resp.State.Analyses[0].Rendered)
	}
	if resp.State.Busy {
		t.Error("expected session to settle")
	}
}

func TestHandleAskStringResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"ok"`))
	}))
	defer server.Close()

	store := setupStore(t)
	id := store.CreateSession()

	rec := postAsk(t, AskRequest{SessionID: id, WebhookURL: server.URL, Question: "ping"})

	resp := decodeAskResponse(t, rec)
	if !resp.OK {
		t.Fatal("expected ok response")
	}
	if resp.State.Analyses[0].Rendered != "ok" {
		t.Errorf("expected the literal string, got %q", resp.State.Analyses[0].Rendered)
	}
}

func TestHandleAskWebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	store := setupStore(t)
	id := store.CreateSession()

	rec := postAsk(t, AskRequest{SessionID: id, WebhookURL: server.URL, Question: "q"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeAskResponse(t, rec)
	if resp.OK {
		t.Error("expected a failed exchange")
	}
	if resp.Notice == "" {
		t.Error("expected a notice for the page to flash")
	}
	if len(resp.State.Messages) != 2 {
		t.Fatalf("expected two messages, got %d", len(resp.State.Messages))
	}
	if resp.State.Messages[1].Text != chat.DefaultErrorText {
		t.Errorf("expected the error message, got %q", resp.State.Messages[1].Text)
	}
	if got := len(resp.State.Analyses); got != 0 {
		t.Errorf("expected no analyses, got %d", got)
	}
}

func TestHandleAskBusySession(t *testing.T) {
	store := setupStore(t)
	id := store.CreateSession()
	sess, _ := store.Session(id)
	if _, err := sess.Begin("held", time.Now()); err != nil {
		t.Fatal(err)
	}

	rec := postAsk(t, AskRequest{SessionID: id, WebhookURL: "http://example.com", Question: "q"})

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
	sess.Fail(time.Now())
}

func TestHandleGetSession(t *testing.T) {
	store := setupStore(t)
	id := store.CreateSession()
	sess, _ := store.Session(id)

	base := time.Now()
	if _, err := sess.Begin("first", base); err != nil {
		t.Fatal(err)
	}
	sess.Complete("first", webhook.TextResult("one"), base.Add(time.Second))
	if _, err := sess.Begin("second", base.Add(2*time.Second)); err != nil {
		t.Fatal(err)
	}
	sess.Complete("second", webhook.TextResult("two"), base.Add(3*time.Second))

	req := httptest.NewRequest("GET", "/api/session/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	HandleGetSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state SessionState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode state: %v", err)
	}
	if len(state.Messages) != 4 {
		t.Fatalf("expected four messages, got %d", len(state.Messages))
	}
	for i := 1; i < len(state.Messages); i++ {
		if state.Messages[i].ID <= state.Messages[i-1].ID {
			t.Errorf("expected ascending message IDs, got %d after %d", state.Messages[i].ID, state.Messages[i-1].ID)
		}
	}
	if len(state.Analyses) != 2 {
		t.Fatalf("expected two analyses, got %d", len(state.Analyses))
	}
	if state.Analyses[0].Question != "second" {
		t.Errorf("expected the newest analysis first, got %q", state.Analyses[0].Question)
	}
	if state.Analyses[1].Question != "first" {
		t.Errorf("expected the oldest analysis last, got %q", state.Analyses[1].Question)
	}
}

func TestHandleGetSessionNotFound(t *testing.T) {
	setupStore(t)

	req := httptest.NewRequest("GET", "/api/session/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()
	HandleGetSession(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealth(rec, httptest.NewRequest("GET", "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %q", body["status"])
	}
}

func TestRegisterRoutes(t *testing.T) {
	router := mux.NewRouter()
	RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from the router, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/ask", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for a wrong method, got %d", rec.Code)
	}
}

func TestReapStaleSessions(t *testing.T) {
	store := setupStore(t)
	id := store.CreateSession()

	if removed := store.reapStale(time.Now()); removed != 0 {
		// fresh sessions must survive; other tests' sessions are also fresh
		t.Errorf("expected nothing to be reaped, got %d", removed)
	}
	if _, ok := store.Session(id); !ok {
		t.Fatal("expected the fresh session to survive")
	}

	store.reapStale(time.Now().Add(sessionTimeout + time.Minute))
	if _, ok := store.Session(id); ok {
		t.Error("expected the stale session to be reaped")
	}
}
