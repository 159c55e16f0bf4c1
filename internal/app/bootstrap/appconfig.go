// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to ConfHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: confhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Base URL the panel is served from, used when building absolute links.
	BaseURL string

	// Query timeout overrides in seconds; 0 keeps the built-in defaults.
	// Medium covers list/count fan-outs, Long the composite dashboard
	// request that walks the session ownership chain.
	QueryTimeoutMediumSecs int
	QueryTimeoutLongSecs   int
}
