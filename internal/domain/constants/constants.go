// Package constants holds identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers selectable through identity.provider.
const (
	IdentityProviderJWT    = "jwt"
	IdentityProviderGoogle = "google"
)
