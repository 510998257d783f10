// Package constants defines shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal publishes events over plain HTTP for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
