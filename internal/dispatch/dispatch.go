// Package dispatch selects which upstream analysis variant a request needs
// and validates the request before anything goes over the wire.
package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/trustguard/internal/types"
)

// Variant is one of the upstream request/response shapes.
type Variant string

const (
	// VariantJobOnly is the plain job analysis, optionally with user context.
	VariantJobOnly Variant = "job"
	// VariantEnhanced is job analysis plus company verification.
	VariantEnhanced Variant = "enhanced"
	// VariantCompanyOnly verifies a company with no job content.
	VariantCompanyOnly Variant = "company"
)

// ValidationError is a pre-flight, caller-correctable failure. It is raised
// before any outbound call and never reaches the network layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Select decides which upstream variant to call for a request. It is a pure
// function of the request: same input, same variant, no I/O. Returns a
// *ValidationError when the request cannot be submitted at all.
func Select(req *types.AnalysisRequest) (Variant, error) {
	if req == nil {
		return "", &ValidationError{Message: "request is required"}
	}

	companyOnly := strings.TrimSpace(req.CompanyURL) != "" && !req.HasJobFields()

	if !companyOnly && !req.HasJobFields() {
		return "", &ValidationError{Message: "Please provide either a URL or Text to analyze."}
	}

	if strings.TrimSpace(req.ProfileURL) != "" && req.Resume != nil {
		return "", &ValidationError{
			Field:   "profile_url",
			Message: "profile URL and resume file are mutually exclusive",
		}
	}

	if err := req.Validate(); err != nil {
		return "", asValidationError(err)
	}

	switch {
	case companyOnly:
		return VariantCompanyOnly, nil
	case strings.TrimSpace(req.CompanyURL) != "":
		return VariantEnhanced, nil
	default:
		return VariantJobOnly, nil
	}
}

// asValidationError converts validator failures to the pre-flight error type,
// keeping the first failing field and a readable message.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	first := verrs[0]
	switch {
	case first.Field() == "JobText" && first.Tag() == "min":
		return &ValidationError{
			Field:   "job_text",
			Message: fmt.Sprintf("job text must be at least %d characters", types.MinJobTextLength),
		}
	case first.Tag() == "profile_url":
		return &ValidationError{
			Field:   "profile_url",
			Message: "profile URL must point at a recognized profile network",
		}
	default:
		return &ValidationError{
			Field:   strings.ToLower(first.Field()),
			Message: fmt.Sprintf("failed %q constraint", first.Tag()),
		}
	}
}
