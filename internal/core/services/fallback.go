package services

import "github.com/civika-labs/serbisyo-cli/internal/core/domain"

// FallbackServices returns the embedded default catalog used when the
// configured source cannot be fetched. It covers only the most requested
// services so that search degrades to "fewer results", never to none.
func FallbackServices() []domain.ServiceRecord {
	return []domain.ServiceRecord{
		{
			ID:             "birth-certificate",
			Title:          "Birth Certificate",
			Category:       "Certificates & Vital Records",
			CategoryID:     "certificates",
			Keywords:       []string{"birth", "certificate"},
			Office:         "Local Civil Registrar",
			Fee:            "₱150",
			ProcessingTime: "15-30 minutes",
			URL:            "../service-details/birth-certificate.html",
		},
		{
			ID:             "business-permit",
			Title:          "Business Permit",
			Category:       "Business Trade & Investment",
			CategoryID:     "business",
			Keywords:       []string{"business", "permit"},
			Office:         "BPLS",
			Fee:            "Varies",
			ProcessingTime: "3-5 days",
			URL:            "business.html",
		},
		{
			ID:             "cedula",
			Title:          "Community Tax Certificate (Cedula)",
			Category:       "Certificates & Vital Records",
			CategoryID:     "certificates",
			Keywords:       []string{"cedula", "community tax"},
			Office:         "Treasurer's Office",
			Fee:            "Based on income",
			ProcessingTime: "Same day",
			URL:            "../service-details/cedula.html",
		},
	}
}
