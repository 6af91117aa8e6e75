package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Detection DetectionConfig
	Handoff   HandoffConfig
	Narrative NarrativeConfig
	APIKeys   APIKeysConfig
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
	Driver    string
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

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// DetectionConfig contains pattern detection engine configuration.
// The detector group-size minimums and severity ladders are fixed by
// the detection rules themselves; only the coarse heuristics live here.
type DetectionConfig struct {
	TravelGapHours int // max hours between far-apart rentals before flagging
	RiskScoreFloor int // prior risk score above which country mismatch flags
}

// HandoffConfig contains location trust scorer configuration. The
// thresholds are coarse heuristics with no statistical basis, so they
// stay configurable rather than hard-coded.
type HandoffConfig struct {
	ImpossibleSpeedMPH   float64 // speed above which the ping is physically implausible
	NullIslandDegrees    float64 // half-width of the (0,0) default-coordinate window
	StationaryBandM      float64 // distance-to-target delta treated as not moving
	MinETASpeedMPH       float64 // minimum speed for an ETA to be meaningful
	SessionTTLMinutes    int     // handoff session expiry in Redis
	IdenticalStreakLimit int     // consecutive identical pings before the deduction compounds
}

// NarrativeConfig contains the optional narrative collaborator endpoint.
// The collaborator only phrases summaries; it never changes a score.
type NarrativeConfig struct {
	URL       string
	TimeoutMs int
	Enabled   bool
}

// APIKeysConfig holds the keys trusted for service-to-service calls
type APIKeysConfig struct {
	BookingService  string
	LocationService string
}
