// Package domain contains the core business entities for briefly.
// These types have no dependencies on infrastructure and represent
// the canonical shapes passed between services and adapters.
package domain
