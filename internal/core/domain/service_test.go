package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRecord_Valid(t *testing.T) {
	tests := []struct {
		name   string
		record ServiceRecord
		want   bool
	}{
		{
			name:   "complete record",
			record: ServiceRecord{ID: "birth-certificate", Title: "Birth Certificate", Category: "Certificates"},
			want:   true,
		},
		{
			name:   "missing title",
			record: ServiceRecord{ID: "x", Category: "Certificates"},
			want:   false,
		},
		{
			name:   "whitespace title",
			record: ServiceRecord{ID: "x", Title: "   ", Category: "Certificates"},
			want:   false,
		},
		{
			name:   "missing category",
			record: ServiceRecord{ID: "x", Title: "Birth Certificate"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Valid())
		})
	}
}

func TestServiceRecord_EnsureID(t *testing.T) {
	r := ServiceRecord{Title: "Barangay Clearance", Category: "Clearances"}
	r.EnsureID(map[string]bool{})
	assert.Equal(t, "barangay-clearance", r.ID)

	// Existing ids are left alone.
	r2 := ServiceRecord{ID: "custom", Title: "Barangay Clearance", Category: "Clearances"}
	r2.EnsureID(map[string]bool{})
	assert.Equal(t, "custom", r2.ID)

	// A taken slug falls back to a generated id.
	r3 := ServiceRecord{Title: "Barangay Clearance", Category: "Clearances"}
	r3.EnsureID(map[string]bool{"barangay-clearance": true})
	assert.NotEmpty(t, r3.ID)
	assert.NotEqual(t, "barangay-clearance", r3.ID)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "birth-certificate", Slugify("Birth Certificate"))
	assert.Equal(t, "real-property-tax", Slugify("  Real Property Tax! "))
	assert.Equal(t, "pwd-id-2024", Slugify("PWD ID (2024)"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestValidateRecord(t *testing.T) {
	issues := ValidateRecord(ServiceRecord{ID: "x"})
	require.Len(t, issues, 3) // title, category, url

	fields := make(map[string]bool)
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["category"])
	assert.True(t, fields["url"])

	ok := ValidateRecord(ServiceRecord{
		ID:       "birth-certificate",
		Title:    "Birth Certificate",
		Category: "Certificates",
		URL:      "../service-details/birth-certificate.html",
	})
	assert.Empty(t, ok)
}
