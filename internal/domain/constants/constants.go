// Package constants defines shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
