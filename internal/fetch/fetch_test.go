package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<!DOCTYPE html>
<html>
<head><title>Backend Engineer</title><script>trackVisit()</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="cookie-banner">We use cookies</div>
<main>
<h1>Backend Engineer</h1>
<p>We are looking for a backend engineer with Go experience.</p>
<p>Salary range listed in the posting.</p>
</main>
<form id="application-form"><input name="email"></form>
<footer>Copyright Acme</footer>
</body>
</html>`

func TestURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Backend Engineer")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURLInvalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"Empty", ""},
		{"No scheme", "example.com/jobs"},
		{"No host", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := URL(context.Background(), tt.url, nil)
			require.Error(t, err)

			var ferr *Error
			assert.ErrorAs(t, err, &ferr)
		})
	}
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<html><body>not found</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	// Body is still returned so callers can inspect the page.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestJobText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	text, err := JobText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "backend engineer with Go experience")
	assert.NotContains(t, text, "We use cookies")
	assert.NotContains(t, text, "Copyright Acme")
	assert.NotContains(t, text, "trackVisit")
}

func TestExtractMainText(t *testing.T) {
	text, err := ExtractMainText(jobPageHTML, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestExtractMainTextNoiseSelectors(t *testing.T) {
	html := `<html><body><div class="content">Real posting text here.
<div class="eeo-statement">Equal opportunity employer statement.</div></div></body></html>`

	text, err := ExtractMainText(html, []string{".content"}, ".eeo-statement")
	require.NoError(t, err)
	assert.Contains(t, text, "Real posting text")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Loose paragraph with the posting.</p></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Contains(t, text, "Loose paragraph")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength-1)))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}

func TestCachedFetcher(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil, 0)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, hits)

	fetcher.Invalidate(server.URL)

	third, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, third.FromCache)
	assert.Equal(t, 2, hits)
}
