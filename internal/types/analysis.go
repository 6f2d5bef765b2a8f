// Package types provides type definitions for structured data used throughout the trustguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/trustguard/internal/fetch"
)

// MinJobTextLength is the minimum number of characters a pasted job description
// must have before it is considered worth analyzing.
const MinJobTextLength = 50

// ResumeArtifact holds an uploaded resume file supplied as user context.
type ResumeArtifact struct {
	Filename string
	Content  []byte
}

// AnalysisRequest represents one user submission. At least one of JobURL or
// JobText is required unless only CompanyURL is set (company-only check).
// ProfileURL and Resume are mutually exclusive user-context hints.
type AnalysisRequest struct {
	JobURL     string          `json:"job_url,omitempty" validate:"omitempty,url"`
	JobText    string          `json:"job_text,omitempty" validate:"omitempty,min=50"`
	CompanyURL string          `json:"company_url,omitempty" validate:"omitempty,url"`
	ProfileURL string          `json:"profile_url,omitempty" validate:"omitempty,profile_url"`
	Resume     *ResumeArtifact `json:"-"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// requestValidator returns the shared validator with the profile_url rule registered.
func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// profile_url accepts only URLs on a recognized profile network
		// (e.g. linkedin.com/in/...). Empty values are handled by omitempty.
		_ = validate.RegisterValidation("profile_url", func(fl validator.FieldLevel) bool {
			return fetch.DetectProfileNetwork(fl.Field().String()) != fetch.ProfileNetworkUnknown
		})
	})
	return validate
}

// Validate checks per-field constraints on the request. Cross-field rules
// (which fields may be combined) are enforced by the dispatcher.
func (r *AnalysisRequest) Validate() error {
	return requestValidator().Struct(r)
}

// HasJobFields reports whether the request carries any job content to analyze.
func (r *AnalysisRequest) HasJobFields() bool {
	return strings.TrimSpace(r.JobURL) != "" || strings.TrimSpace(r.JobText) != ""
}

// HasUserContext reports whether the request carries a profile URL or resume.
func (r *AnalysisRequest) HasUserContext() bool {
	return strings.TrimSpace(r.ProfileURL) != "" || r.Resume != nil
}
