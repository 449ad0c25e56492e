package manager

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dags-/jenkbadge/badge"
	"github.com/dags-/jenkbadge/service"
)

type countingProvider struct {
	calls atomic.Int32
}

var countingRoute = regexp.MustCompile(`^/count(?:-alias)?/([^/]+)\.(svg|png|gif|jpg|json)$`)

func (p *countingProvider) Metadata() service.Metadata {
	return service.Metadata{
		Category: "test",
		Route:    service.Route{Base: "count", Pattern: ":name", Regexp: countingRoute},
	}
}

func (p *countingProvider) Examples() []service.Example {
	return []service.Example{{Title: "Counter", Pattern: ":name"}}
}

func (p *countingProvider) Handle(_ context.Context, rq *service.Request) *badge.Data {
	p.calls.Add(1)
	d := badge.MakeData("count", rq.Overrides)
	d.Text[1] = rq.Param(0)
	d.ColorScheme = "brightgreen"
	return d
}

func newTestManager(t *testing.T, ttl time.Duration) (*gin.Engine, *countingProvider) {
	t.Helper()
	return newTestManagerWithStore(t, NewMemoryStore(), ttl)
}

func newTestManagerWithStore(t *testing.T, store Store, ttl time.Duration) (*gin.Engine, *countingProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p := &countingProvider{}
	r := service.NewRegistry()
	r.Register(p)
	return New(r, store, ttl).Routes(), p
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestServeBadgeJSON(t *testing.T) {
	engine, _ := newTestManager(t, time.Minute)

	w := get(engine, "/count/hello.json?label=greeting")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("unexpected content type: %s", w.Header().Get("Content-Type"))
	}
	if w.Header().Get("Cache-Control") != "max-age=60" {
		t.Fatalf("unexpected cache header: %s", w.Header().Get("Cache-Control"))
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing request id")
	}

	var got map[string]any
	if e := json.Unmarshal(w.Body.Bytes(), &got); e != nil {
		t.Fatalf("decode: %v", e)
	}
	if got["label"] != "greeting" || got["message"] != "hello" || got["color"] != "brightgreen" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServeBadgeFormats(t *testing.T) {
	engine, _ := newTestManager(t, time.Minute)

	for format, contentType := range map[string]string{
		"svg": "image/svg+xml",
		"png": "image/png",
		"gif": "image/gif",
		"jpg": "image/jpeg",
	} {
		w := get(engine, "/count-alias/x."+format)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", format, w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), contentType) {
			t.Fatalf("%s: unexpected content type %s", format, w.Header().Get("Content-Type"))
		}
		if w.Body.Len() == 0 {
			t.Fatalf("%s: empty body", format)
		}
	}
}

func TestServeBadgeCaches(t *testing.T) {
	engine, p := newTestManager(t, time.Minute)

	get(engine, "/count/a.svg")
	get(engine, "/count/a.svg")
	if n := p.calls.Load(); n != 1 {
		t.Fatalf("expected one provider call, got %d", n)
	}

	// overrides are part of the key
	get(engine, "/count/a.svg?label=other")
	if n := p.calls.Load(); n != 2 {
		t.Fatalf("expected a second provider call, got %d", n)
	}
}

func TestServeBadgeWithoutCache(t *testing.T) {
	engine, p := newTestManager(t, 0)

	get(engine, "/count/a.svg")
	get(engine, "/count/a.svg")
	if n := p.calls.Load(); n != 2 {
		t.Fatalf("expected two provider calls, got %d", n)
	}
}

func TestServeBadgeNotFound(t *testing.T) {
	engine, p := newTestManager(t, time.Minute)

	for _, path := range []string{"/nope/a.svg", "/count/a.bmp", "/count/a"} {
		if w := get(engine, path); w.Code != http.StatusNotFound {
			t.Fatalf("%s: unexpected status %d", path, w.Code)
		}
	}
	if p.calls.Load() != 0 {
		t.Fatal("provider should not be called")
	}
}

func TestServeExamplesAndHealth(t *testing.T) {
	engine, _ := newTestManager(t, time.Minute)

	w := get(engine, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %s", w.Code, w.Body.String())
	}

	w = get(engine, "/examples.json")
	var listings []service.Listing
	if e := json.Unmarshal(w.Body.Bytes(), &listings); e != nil {
		t.Fatalf("decode: %v", e)
	}
	if len(listings) != 1 || listings[0].Base != "count" || listings[0].Examples[0].Title != "Counter" {
		t.Fatalf("unexpected listings: %s", w.Body.String())
	}
}
