package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Alerts   AlertsConfig
	Tokens   TokensConfig
	Services ServicesConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the per-service keys for internal routes
type APIKeyConfig struct {
	AlertsService   string
	LocationService string
	SharingService  string
}

// AlertsConfig contains alert lifecycle specific configuration.
// The default coordinates back the geolocation fallback: alert
// creation must never block on a failed position fix.
type AlertsConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
}

// TokensConfig contains token issuer policy
type TokensConfig struct {
	TerminationTTLMinutes int // validation codes, tens of minutes
	DelegationTTLMinutes  int // share links, may be configured longer
	GCSchedule            string
}

// ServicesConfig contains URLs for service-to-service calls
type ServicesConfig struct {
	AlertsServiceURL   string
	LocationServiceURL string
	SharingServiceURL  string
}

// NewRelicConfig contains observability agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
