package domain

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ServiceRecord represents a single government service in the catalog.
// Title and Category are required; a record missing either is considered
// malformed and is dropped at ingestion rather than indexed.
type ServiceRecord struct {
	// ID is the unique, stable identifier within a catalog snapshot.
	ID string `json:"id"`

	// Title is the display name and primary search field.
	Title string `json:"title"`

	// Category is the human-readable grouping label.
	Category string `json:"category"`

	// CategoryID is the stable identifier of the category.
	CategoryID string `json:"categoryId"`

	// Keywords are synonyms and aliases used for search. May be empty.
	Keywords []string `json:"keywords"`

	// Office is the municipal office that provides the service.
	Office string `json:"office,omitempty"`

	// Description is a short free-text summary.
	Description string `json:"description,omitempty"`

	// Fee is the display text for the service fee (e.g. "₱150").
	Fee string `json:"fee,omitempty"`

	// ProcessingTime is the display text for turnaround (e.g. "same day").
	ProcessingTime string `json:"processingTime,omitempty"`

	// URL is the target link, relative or absolute.
	URL string `json:"url"`
}

// Valid reports whether the record carries the required fields.
func (r ServiceRecord) Valid() bool {
	return strings.TrimSpace(r.Title) != "" && strings.TrimSpace(r.Category) != ""
}

// EnsureID fills in a missing id with a slug derived from the title.
// The published catalog always carries ids; this guards hand-built ones.
func (r *ServiceRecord) EnsureID(taken map[string]bool) {
	if r.ID != "" {
		return
	}
	slug := Slugify(r.Title)
	if slug == "" || taken[slug] {
		slug = uuid.NewString()
	}
	r.ID = slug
}

// Slugify lowers a title into a url-safe dashed identifier.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, c := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Category is a unique category entry derived from the catalog.
type Category struct {
	// ID is the stable category identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`
}

// ValidationIssue describes a problem found in a catalog record.
type ValidationIssue struct {
	// RecordID identifies the offending record, when it has an id.
	RecordID string

	// Field names the field the issue concerns.
	Field string

	// Message is a human-readable description.
	Message string
}

// ValidateRecord reports issues with a single record. A nil return means
// the record is well-formed.
func ValidateRecord(r ServiceRecord) []ValidationIssue {
	var issues []ValidationIssue
	if strings.TrimSpace(r.Title) == "" {
		issues = append(issues, ValidationIssue{RecordID: r.ID, Field: "title", Message: "missing title"})
	}
	if strings.TrimSpace(r.Category) == "" {
		issues = append(issues, ValidationIssue{RecordID: r.ID, Field: "category", Message: "missing category"})
	}
	if r.URL == "" {
		issues = append(issues, ValidationIssue{RecordID: r.ID, Field: "url", Message: "missing url"})
	} else if _, err := url.Parse(r.URL); err != nil {
		issues = append(issues, ValidationIssue{RecordID: r.ID, Field: "url", Message: "malformed url: " + err.Error()})
	}
	return issues
}
