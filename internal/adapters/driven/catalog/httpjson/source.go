// Package httpjson provides a catalog source that fetches the service
// catalog JSON document over HTTP.
package httpjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
)

// maxDocumentSize bounds the catalog download. The published document is a
// few hundred kilobytes; anything past this is a misconfigured URL.
const maxDocumentSize = 8 << 20

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source fetches the catalog document from an HTTP endpoint. Fetches are
// rate-limited so that invalidation loops cannot hammer the origin.
type Source struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewSource creates an HTTP catalog source for the given URL. timeout
// bounds each fetch; non-positive means no timeout.
func NewSource(url string, timeout time.Duration) *Source {
	return &Source{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Fetch downloads and decodes the catalog document.
func (s *Source) Fetch(ctx context.Context) (*domain.CatalogDocument, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiting catalog fetch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrCatalogUnavailable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("reading catalog body: %w", err)
	}

	return decodeDocument(body)
}

// Describe identifies the source in logs.
func (s *Source) Describe() string {
	return s.url
}

// decodeDocument accepts both the wrapped {"services": [...]} form and a
// bare top-level array.
func decodeDocument(data []byte) (*domain.CatalogDocument, error) {
	var doc domain.CatalogDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Services != nil {
		return &doc, nil
	}

	var services []domain.ServiceRecord
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("decoding catalog document: %w", err)
	}
	return &domain.CatalogDocument{Services: services}, nil
}
