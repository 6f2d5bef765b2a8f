package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/trustguard/internal/aggregate"
	"github.com/jonathan/trustguard/internal/dispatch"
	"github.com/jonathan/trustguard/internal/types"
)

// maxResumeSize caps uploaded resume files at 10 MB.
const maxResumeSize = 10 << 20

// AnalyzeRequestBody is the JSON body for POST /analyze. Field names match
// what the web frontend already sends.
type AnalyzeRequestBody struct {
	URL                string `json:"url,omitempty"`
	Text               string `json:"text,omitempty"`
	CompanyURL         string `json:"company_url,omitempty"`
	LinkedInProfileURL string `json:"linkedin_profile_url,omitempty"`
}

// handleAnalyze runs one submission through the session and returns the
// aggregate result. A newer submission while this one is pending wins.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.session.Submit(r.Context(), req)
	if err != nil {
		if !errors.Is(err, aggregate.ErrSuperseded) {
			log.Printf("[analyze] submission failed: %v", err)
		}
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeStream is the SSE variant of /analyze: the client learns which
// variant was dispatched, then gets the result (or error) as events.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Variant selection is pure, so it can be reported before submitting.
	variant, verr := dispatch.Select(req)
	if verr != nil {
		sse.WriteError(userMessage(verr))
		return
	}
	_ = sse.WriteEvent("dispatched", map[string]string{"variant": string(variant)})

	result, err := s.session.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, aggregate.ErrSuperseded) {
			// The stale stream stays silent about results it no longer owns.
			_ = sse.WriteEvent("superseded", map[string]string{})
			return
		}
		log.Printf("[analyze] submission failed: %v", err)
		sse.WriteError(userMessage(err))
		return
	}

	sse.WriteComplete(result)
}

// handleCompany runs a company-only check: GET /company?url=...
func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	companyURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if companyURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	result, err := s.session.Submit(r.Context(), &types.AnalysisRequest{CompanyURL: companyURL})
	if err != nil {
		if !errors.Is(err, aggregate.ErrSuperseded) {
			log.Printf("[company] submission failed: %v", err)
		}
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleResult returns the most recently published aggregate result.
func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	result := s.session.Result()
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "no analysis has completed yet")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// healthResponse reports local liveness plus upstream provider availability.
type healthResponse struct {
	Status                string `json:"status"`
	UpstreamReachable     bool   `json:"upstream_reachable"`
	CompanyVerificationUp *bool  `json:"company_verification_available,omitempty"`
}

// handleHealth returns server health plus upstream availability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy"}

	if status, err := s.upstream.Health(r.Context()); err == nil {
		resp.UpstreamReachable = true
		resp.CompanyVerificationUp = status.CompanyVerificationUp
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// parseAnalyzeRequest builds an AnalysisRequest from either a JSON body or a
// multipart form carrying a resume file.
func (s *Server) parseAnalyzeRequest(r *http.Request) (*types.AnalysisRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.parseMultipartRequest(r)
	}

	var body AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid request body")
	}

	return &types.AnalysisRequest{
		JobURL:     strings.TrimSpace(body.URL),
		JobText:    body.Text,
		CompanyURL: strings.TrimSpace(body.CompanyURL),
		ProfileURL: strings.TrimSpace(body.LinkedInProfileURL),
	}, nil
}

// parseMultipartRequest handles resume uploads alongside the regular fields.
func (s *Server) parseMultipartRequest(r *http.Request) (*types.AnalysisRequest, error) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		return nil, errors.New("invalid multipart form")
	}

	req := &types.AnalysisRequest{
		JobURL:     strings.TrimSpace(r.FormValue("url")),
		JobText:    r.FormValue("text"),
		CompanyURL: strings.TrimSpace(r.FormValue("company_url")),
		ProfileURL: strings.TrimSpace(r.FormValue("linkedin_profile_url")),
	}

	file, header, err := r.FormFile("resume_file")
	if err == nil {
		defer func() { _ = file.Close() }()
		content, readErr := io.ReadAll(io.LimitReader(file, maxResumeSize))
		if readErr != nil {
			return nil, errors.New("could not read resume file")
		}
		req.Resume = &types.ResumeArtifact{
			Filename: header.Filename,
			Content:  content,
		}
	}

	return req, nil
}
