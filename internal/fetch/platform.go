// Package fetch - platform.go provides job board and profile network detection.
package fetch

import (
	"net/url"
	"strings"
)

// JobBoard represents a known job board platform.
type JobBoard string

const (
	// BoardGreenhouse is the Greenhouse ATS platform
	BoardGreenhouse JobBoard = "greenhouse"
	// BoardLever is the Lever ATS platform
	BoardLever JobBoard = "lever"
	// BoardWorkday is the Workday ATS platform
	BoardWorkday JobBoard = "workday"
	// BoardUnknown is an unrecognized platform
	BoardUnknown JobBoard = "unknown"
)

// ProfileNetwork represents a professional network that hosts user profiles.
type ProfileNetwork string

const (
	// NetworkLinkedIn is a linkedin.com/in/ profile
	NetworkLinkedIn ProfileNetwork = "linkedin"
	// NetworkXing is a xing.com/profile/ profile
	NetworkXing ProfileNetwork = "xing"
	// ProfileNetworkUnknown is an unrecognized profile host
	ProfileNetworkUnknown ProfileNetwork = "unknown"
)

// DetectJobBoard identifies the job board platform from a URL.
func DetectJobBoard(urlStr string) JobBoard {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return BoardUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "greenhouse.io") {
		return BoardGreenhouse
	}
	if strings.Contains(host, "lever.co") {
		return BoardLever
	}
	if strings.Contains(host, "workday.com") ||
		strings.Contains(host, "myworkdayjobs.com") {
		return BoardWorkday
	}

	return BoardUnknown
}

// DetectProfileNetwork identifies the profile network a URL belongs to.
// Used to validate the profile_url field before dispatch: only URLs that
// point at an actual profile page count, not arbitrary pages on the host.
func DetectProfileNetwork(urlStr string) ProfileNetwork {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" {
		return ProfileNetworkUnknown
	}

	host := strings.ToLower(parsed.Host)
	path := strings.ToLower(parsed.Path)

	if hostMatches(host, "linkedin.com") && strings.HasPrefix(path, "/in/") && len(path) > len("/in/") {
		return NetworkLinkedIn
	}
	if hostMatches(host, "xing.com") && strings.HasPrefix(path, "/profile/") && len(path) > len("/profile/") {
		return NetworkXing
	}

	return ProfileNetworkUnknown
}

// hostMatches reports whether host is domain or a subdomain of it. A plain
// suffix check would accept lookalike hosts like fakelinkedin.com.
func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// JobBoardContentSelectors returns content selectors optimized for a specific platform.
func JobBoardContentSelectors(board JobBoard) []string {
	switch board {
	case BoardGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case BoardLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case BoardWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
			".job-description",
		}
	default:
		return JobPostingSelectors()
	}
}

// JobBoardNoiseSelectors returns noise exclusion selectors for a specific platform.
func JobBoardNoiseSelectors(board JobBoard) []string {
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",

		// EEO and legal
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".self-identification",

		// Social and share buttons
		".social-share",
		".share-buttons",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch board {
	case BoardGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".post-apply",
		)
	case BoardLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case BoardWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	default:
		return common
	}
}
