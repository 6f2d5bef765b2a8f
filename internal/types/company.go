package types

// CompanyProfile holds descriptive company attributes extracted by the
// verifier. Every attribute is independently optional: a nil pointer means
// "unknown", which is distinct from a present-but-empty value. Sentinels like
// "" or 0 are never used for missing data.
type CompanyProfile struct {
	Domain        *string           `json:"domain,omitempty"`
	CompanyName   *string           `json:"company_name,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Emails        []string          `json:"emails,omitempty"`
	Phones        []string          `json:"phones,omitempty"`
	SocialMedia   map[string]bool   `json:"social_media,omitempty"`
	Industry      *string           `json:"industry,omitempty"`
	EmployeeCount *string           `json:"employee_count,omitempty"`
	CompanyType   *string           `json:"company_type,omitempty"`
	Revenue       *string           `json:"revenue,omitempty"`
	Location      *string           `json:"location,omitempty"`
	FoundingYear  *string           `json:"founding_year,omitempty"`
	Tagline       *string           `json:"tagline,omitempty"`
	SocialStats   []SocialMediaStat `json:"social_media_stats,omitempty"`
	Timeline      []TimelineEntry   `json:"timeline,omitempty"`
}

// SocialMediaStat describes one social presence entry reported by the verifier.
type SocialMediaStat struct {
	Platform  string `json:"platform"`
	URL       string `json:"url,omitempty"`
	Followers string `json:"followers,omitempty"`
}

// TimelineEntry is one company milestone reported by the verifier.
type TimelineEntry struct {
	Year  string `json:"year"`
	Event string `json:"event"`
}
