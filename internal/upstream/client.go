package upstream

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/trustguard/internal/schemas"
	"github.com/jonathan/trustguard/internal/types"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// DefaultTimeout bounds one upstream call. Analysis involves scraping and
// model calls on the service side, so this is generous.
const DefaultTimeout = 60 * time.Second

// Operation paths on the analysis service.
const (
	pathAnalyze         = "/analyze"
	pathAnalyzeEnhanced = "/analyze/enhanced"
	pathCompanyAnalyze  = "/company/analyze"
	pathHealth          = "/health"
)

var (
	jobSchema      = mustSchema("job_analysis.schema.json")
	enhancedSchema = mustSchema("enhanced_analysis.schema.json")
	companySchema  = mustSchema("company_analysis.schema.json")
)

func mustSchema(name string) string {
	data, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("embedded schema %s missing: %v", name, err))
	}
	return string(data)
}

// Client talks to the analysis service. One submission makes exactly one call
// through it; retries are the caller's decision, never the client's.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the analysis service at baseURL.
// A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// AnalyzeJob runs the plain job analysis, optionally carrying a profile URL
// or resume file as user-context hints. A resume switches the request to
// multipart form encoding; everything else goes as JSON.
func (c *Client) AnalyzeJob(ctx context.Context, req *types.AnalysisRequest) (*JobAnalysis, error) {
	const op = "job analysis"

	var body []byte
	var err error
	if req.Resume != nil {
		body, err = c.postResume(ctx, op, req)
	} else {
		payload := JobAnalysisRequest{
			JobURL:             optString(req.JobURL),
			JobDescription:     optString(req.JobText),
			LinkedInProfileURL: optString(req.ProfileURL),
		}
		body, err = c.postJSON(ctx, op, pathAnalyze, payload)
	}
	if err != nil {
		return nil, err
	}

	if serr := schemas.ValidateBytes("job_analysis", jobSchema, body); serr != nil {
		return nil, &MalformedResponseError{Op: op, Message: "response failed schema validation", Cause: serr}
	}

	var out JobAnalysis
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &MalformedResponseError{Op: op, Message: "could not decode response", Cause: err}
	}
	return &out, nil
}

// AnalyzeEnhanced runs the job + company analysis.
func (c *Client) AnalyzeEnhanced(ctx context.Context, req *types.AnalysisRequest) (*EnhancedAnalysis, error) {
	const op = "enhanced analysis"

	payload := EnhancedAnalysisRequest{
		JobURL:         optString(req.JobURL),
		JobDescription: optString(req.JobText),
		CompanyURL:     optString(req.CompanyURL),
	}
	body, err := c.postJSON(ctx, op, pathAnalyzeEnhanced, payload)
	if err != nil {
		return nil, err
	}

	if serr := schemas.ValidateBytes("enhanced_analysis", enhancedSchema, body); serr != nil {
		return nil, &MalformedResponseError{Op: op, Message: "response failed schema validation", Cause: serr}
	}

	var out EnhancedAnalysis
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &MalformedResponseError{Op: op, Message: "could not decode response", Cause: err}
	}
	return &out, nil
}

// AnalyzeCompany runs the company-only analysis.
func (c *Client) AnalyzeCompany(ctx context.Context, companyURL string) (*CompanyAnalysis, error) {
	const op = "company analysis"

	body, err := c.postJSON(ctx, op, pathCompanyAnalyze, CompanyAnalysisRequest{CompanyURL: companyURL})
	if err != nil {
		return nil, err
	}

	if serr := schemas.ValidateBytes("company_analysis", companySchema, body); serr != nil {
		return nil, &MalformedResponseError{Op: op, Message: "response failed schema validation", Cause: serr}
	}

	var out CompanyAnalysis
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &MalformedResponseError{Op: op, Message: "could not decode response", Cause: err}
	}
	return &out, nil
}

// Health checks the analysis service, including availability of its
// company-verification provider.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	const op = "health check"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := c.readResponse(op, resp)
	if err != nil {
		return nil, err
	}

	var out HealthStatus
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &MalformedResponseError{Op: op, Message: "could not decode response", Cause: err}
	}
	return &out, nil
}

// postJSON posts a JSON payload and returns the raw success body.
func (c *Client) postJSON(ctx context.Context, op, path string, payload any) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	return c.readResponse(op, resp)
}

// postResume posts the job fields plus the resume file as multipart form data.
func (c *Client) postResume(ctx context.Context, op string, r *types.AnalysisRequest) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"job_url":         r.JobURL,
		"job_description": r.JobText,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, &NetworkError{Op: op, Cause: err}
		}
	}

	part, err := writer.CreateFormFile("resume_file", r.Resume.Filename)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	if _, err := part.Write(r.Resume.Content); err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathAnalyze, &buf)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	return c.readResponse(op, resp)
}

// readResponse reads the body and maps non-success statuses to UpstreamError,
// extracting the detail message when the service sent one.
func (c *Client) readResponse(op string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Cause: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		// A missing or unparseable detail still surfaces a generic failure.
		_ = json.Unmarshal(body, &eb)
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	return body, nil
}

// optString returns nil for blank strings so absent fields serialize as null.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
