package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ishikawa/internal/adapters/memory"
	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/presentation/svg"
	"github.com/aretw0/ishikawa/internal/runtime"
	"github.com/aretw0/ishikawa/pkg/domain"
)

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	engine := runtime.NewEngine(
		mockdata.NewProvider(mockdata.WithLatency(0)),
		memory.NewStore(),
		svg.NewRenderer(),
	)
	return NewHandler(engine, opts...)
}

func postGenerate(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestGenerate_Success(t *testing.T) {
	handler := newTestHandler(t)

	w := postGenerate(t, handler, `{"incident": "Fire in warehouse", "level": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Session)
	assert.NotEmpty(t, resp.Session.ID)
	assert.Equal(t, domain.StatusReady, resp.Session.Status)
	assert.Equal(t, "Fire in warehouse", resp.Session.Incident)
	assert.Len(t, resp.Session.Nodes, 7)
	assert.False(t, resp.View.Loading)
	assert.True(t, resp.View.ChartVisible)
	assert.True(t, resp.View.ExportEnabled)
}

func TestGenerate_EmptyIncident(t *testing.T) {
	handler := newTestHandler(t)

	w := postGenerate(t, handler, `{"incident": "   ", "level": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incident description")
}

func TestGenerate_NonNumericLevel(t *testing.T) {
	handler := newTestHandler(t)

	w := postGenerate(t, handler, `{"incident": "Fire", "level": "two"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_FractionalLevel(t *testing.T) {
	handler := newTestHandler(t)

	w := postGenerate(t, handler, `{"incident": "Fire", "level": 1.5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// blockingProvider parks Fetch until released so tests can observe the
// loading phase.
type blockingProvider struct {
	release chan struct{}
	inner   *mockdata.Provider
}

func (p *blockingProvider) Fetch(ctx context.Context, incident string, level int) (domain.Tree, error) {
	select {
	case <-p.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return p.inner.Fetch(ctx, incident, level)
}

func TestGenerate_ConcurrentSubmissionRejected(t *testing.T) {
	provider := &blockingProvider{
		release: make(chan struct{}),
		inner:   mockdata.NewProvider(mockdata.WithLatency(0)),
	}
	engine := runtime.NewEngine(provider, memory.NewStore(), svg.NewRenderer())
	handler := NewHandler(engine)

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- postGenerate(t, handler, `{"incident": "Fire", "level": 1, "session_id": "s1"}`)
	}()

	require.Eventually(t, func() bool {
		req := httptest.NewRequest("GET", "/api/sessions/s1", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			return false
		}
		var resp GenerateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			return false
		}
		return resp.Session.Status == domain.StatusLoading
	}, 2*time.Second, 5*time.Millisecond)

	w := postGenerate(t, handler, `{"incident": "Flood", "level": 1, "session_id": "s1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	close(provider.release)
	res := <-first
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestGetSession_NotFound(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/sessions/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDiagram(t *testing.T) {
	handler := newTestHandler(t)

	w := postGenerate(t, handler, `{"incident": "Fire", "level": 1, "session_id": "d1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("GET", "/diagram/d1.svg", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "Fire")
}

func TestGetDiagram_UnknownSession(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/diagram/missing.svg", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReport(t *testing.T) {
	handler := newTestHandler(t)

	w := postGenerate(t, handler, `{"incident": "Fire in warehouse", "level": 1, "session_id": "r1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("GET", "/report/r1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ishikawa Incident Analysis - Fire in warehouse")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "window.print()")
}

func TestGetReport_NoDiagramYet(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/report/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndex(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "Generate Diagram")
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := newTestHandler(t, WithMetricsGatherer(reg))

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/api/generate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
