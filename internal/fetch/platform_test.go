package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectJobBoard(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected JobBoard
	}{
		{"Greenhouse board", "https://boards.greenhouse.io/acme/jobs/123", BoardGreenhouse},
		{"Lever posting", "https://jobs.lever.co/acme/abc-def", BoardLever},
		{"Workday", "https://acme.wd1.myworkdayjobs.com/en-US/careers/job/123", BoardWorkday},
		{"Workday main domain", "https://acme.workday.com/job/123", BoardWorkday},
		{"Company careers page", "https://acme.example.com/careers/123", BoardUnknown},
		{"Garbage URL", "://not-a-url", BoardUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectJobBoard(tt.url))
		})
	}
}

func TestDetectProfileNetwork(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected ProfileNetwork
	}{
		{"LinkedIn profile", "https://www.linkedin.com/in/jane-doe", NetworkLinkedIn},
		{"LinkedIn profile no www", "https://linkedin.com/in/jane", NetworkLinkedIn},
		{"LinkedIn uppercase path", "https://www.linkedin.com/IN/Jane", NetworkLinkedIn},
		{"Xing profile", "https://www.xing.com/profile/Jane_Doe", NetworkXing},
		{"LinkedIn company page", "https://www.linkedin.com/company/acme", ProfileNetworkUnknown},
		{"LinkedIn bare /in/", "https://www.linkedin.com/in/", ProfileNetworkUnknown},
		{"LinkedIn feed", "https://www.linkedin.com/feed", ProfileNetworkUnknown},
		{"Lookalike host", "https://fakelinkedin.com/in/jane", ProfileNetworkUnknown},
		{"Arbitrary page", "https://example.com/about-me", ProfileNetworkUnknown},
		{"No host", "/in/jane", ProfileNetworkUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectProfileNetwork(tt.url))
		})
	}
}
