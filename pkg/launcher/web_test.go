package launcher

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/schardosin/askhook/pkg/api"
	"github.com/schardosin/askhook/pkg/chat"
)

var sessionTokenRe = regexp.MustCompile(`const sessionId = "([^"]+)"`)

func TestServeIndexInjectsSession(t *testing.T) {
	rec := httptest.NewRecorder()
	serveIndex("https://hooks.example.com/analyze")(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML response, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `value="https://hooks.example.com/analyze"`) {
		t.Error("expected the webhook URL to prefill the page")
	}

	match := sessionTokenRe.FindStringSubmatch(body)
	if match == nil {
		t.Fatal("expected a session token in the page")
	}
	if _, ok := api.GetStore().Session(match[1]); !ok {
		t.Error("expected the injected token to map to a live session")
	}
}

func TestServeIndexCreatesDistinctSessions(t *testing.T) {
	first := httptest.NewRecorder()
	serveIndex("")(first, httptest.NewRequest("GET", "/", nil))
	second := httptest.NewRecorder()
	serveIndex("")(second, httptest.NewRequest("GET", "/", nil))

	a := sessionTokenRe.FindStringSubmatch(first.Body.String())
	b := sessionTokenRe.FindStringSubmatch(second.Body.String())
	if a == nil || b == nil {
		t.Fatal("expected session tokens in both pages")
	}
	if a[1] == b[1] {
		t.Error("expected each page load to get its own session")
	}
}

func TestIndexPageUsesCanonicalNotice(t *testing.T) {
	if !strings.Contains(indexPageHTML, chat.MissingURLNotice) {
		t.Error("expected the page to alert with the canonical missing-URL notice")
	}
}
