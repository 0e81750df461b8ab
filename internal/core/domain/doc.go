// Package domain defines the core business entities for Serbisyo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - ServiceRecord: A government service entry in the catalog
//   - Catalog: An immutable snapshot of service records
//   - ScoredResult: A record annotated with a relevance score
//   - SearchStat: A persisted per-query analytics entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
package domain
