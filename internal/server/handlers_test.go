package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/trustguard/internal/types"
)

var longText = strings.Repeat("We are hiring a backend engineer. ", 5)

const validJobResponse = `{
	"trust_score": 72,
	"label": "whatever upstream says",
	"reasons": ["Posted on an established board"],
	"recommended_action": "Proceed with caution."
}`

// newTestServer wires a Server against a stub analysis service.
func newTestServer(t *testing.T, upstream http.HandlerFunc) (*Server, *httptest.Server) {
	t.Helper()

	upstreamSrv := httptest.NewServer(upstream)
	t.Cleanup(upstreamSrv.Close)

	srv, err := New(Config{Port: 0, UpstreamURL: upstreamSrv.URL})
	require.NoError(t, err)
	t.Cleanup(func() { srv.rateLimiter.Stop() })

	return srv, upstreamSrv
}

func doJSON(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		_, _ = w.Write([]byte(validJobResponse))
	})

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})
	rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AggregateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 72, result.DisplayScore)
	assert.Equal(t, types.TierSafe, result.RiskTier)
	assert.Equal(t, "Likely Legitimate", result.Label, "label comes from local classification")
}

func TestHandleAnalyzeValidationError(t *testing.T) {
	srv, _ := newTestServer(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no upstream call expected for an invalid request")
	})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Please provide either a URL or Text to analyze.", errBody["detail"])
}

func TestHandleAnalyzeBadJSON(t *testing.T) {
	srv, _ := newTestServer(t, func(http.ResponseWriter, *http.Request) {})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandleAnalyzeUpstreamFailure(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail": "rate limited"}`))
	})

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})
	rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limited")
}

func TestHandleAnalyzeUpstreamUnreachable(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstreamSrv.Close()

	srv, err := New(Config{Port: 0, UpstreamURL: upstreamSrv.URL})
	require.NoError(t, err)
	t.Cleanup(func() { srv.rateLimiter.Stop() })

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})
	rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not reach the analysis service.")
}

func TestHandleAnalyzeMalformedUpstreamResponse(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"trust_score": "high"}`))
	})

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})
	rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "unusable response")
}

func TestHandleAnalyzeMultipartResume(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// The resume travels on to the analysis service as multipart too.
		require.NoError(t, r.ParseMultipartForm(maxResumeSize))
		_, header, err := r.FormFile("resume_file")
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", header.Filename)
		_, _ = w.Write([]byte(validJobResponse))
	})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("text", longText))
	part, err := writer.CreateFormFile("resume_file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCompany(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company/analyze", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "company_trust_score": 64, "risk_factors": []}`))
	})

	rec := doJSON(t, srv, http.MethodGet, "/company?url=https%3A%2F%2Facme.example.com", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AggregateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 64, result.DisplayScore)
}

func TestHandleCompanyMissingURL(t *testing.T) {
	srv, _ := newTestServer(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no upstream call expected")
	})

	rec := doJSON(t, srv, http.MethodGet, "/company", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "url query parameter is required")
}

func TestHandleResult(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validJobResponse))
	})

	rec := doJSON(t, srv, http.MethodGet, "/result", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "no result before the first submission")

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})
	rec = doJSON(t, srv, http.MethodPost, "/analyze", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/result", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AggregateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 72, result.DisplayScore)
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "healthy", "company_verification_available": true}`))
	})

	rec := doJSON(t, srv, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.UpstreamReachable)
	require.NotNil(t, resp.CompanyVerificationUp)
	assert.True(t, *resp.CompanyVerificationUp)
}

func TestHandleHealthUpstreamDown(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstreamSrv.Close()

	srv, err := New(Config{Port: 0, UpstreamURL: upstreamSrv.URL})
	require.NoError(t, err)
	t.Cleanup(func() { srv.rateLimiter.Stop() })

	rec := doJSON(t, srv, http.MethodGet, "/health", "")

	// The API server itself is healthy even when the upstream is not.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.UpstreamReachable)
}

func TestHandleAnalyzeStream(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validJobResponse))
	})

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText, CompanyURL: ""})
	rec := doJSON(t, srv, http.MethodPost, "/analyze/stream", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	events := rec.Body.String()
	assert.Contains(t, events, "event: dispatched")
	assert.Contains(t, events, `"variant":"job"`)
	assert.Contains(t, events, "event: complete")
	assert.Contains(t, events, `"trust_score":72`)
}

func TestHandleAnalyzeStreamValidationError(t *testing.T) {
	srv, _ := newTestServer(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no upstream call expected")
	})

	rec := doJSON(t, srv, http.MethodPost, "/analyze/stream", `{}`)

	events := rec.Body.String()
	assert.Contains(t, events, "event: error")
	assert.Contains(t, events, "Please provide either a URL or Text to analyze.")
	assert.NotContains(t, events, "event: dispatched")
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitHeadersPresent(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validJobResponse))
	})

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})
	rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "20", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitExceeded(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validJobResponse))
	})

	body, _ := json.Marshal(AnalyzeRequestBody{Text: longText})

	// /analyze allows a burst of 5 per client.
	for i := 0; i < 5; i++ {
		rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))
		require.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i+1)
	}

	rec := doJSON(t, srv, http.MethodPost, "/analyze", string(body))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}

func TestNewRequiresUpstreamURL(t *testing.T) {
	_, err := New(Config{Port: 8090})
	require.Error(t, err)
}
