// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selectors accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pagination defaults for list endpoints.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)
