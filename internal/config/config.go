package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Planner   PlannerConfig
	Auth      AuthConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// PlannerConfig controls the order generator and assignment engine
type PlannerConfig struct {
	// GenerationCron schedules the daily order generation pass
	GenerationCron string
	// AssignmentCron schedules the assignment pass
	AssignmentCron string
	// LookaheadDays is the due-date window of the generation pass
	LookaheadDays int
	// ProjectedOrders is the number of future placeholder orders kept per subscription
	ProjectedOrders int
	// JobTimeout bounds a single scheduled pass (seconds)
	JobTimeout int
	// JobsEnabled starts the cron scheduler when true
	JobsEnabled bool
	// RunOnStartup triggers a generation pass immediately after boot
	RunOnStartup bool
	// RetryAttempts is the per-unit retry budget for transient store errors
	RetryAttempts int
	// RetryBackoff is the initial per-unit retry delay (milliseconds, doubles per attempt)
	RetryBackoff int
}

// AuthConfig holds credentials for the admin trigger surface
type AuthConfig struct {
	// ApiKey authenticates system callers via the x-api-key header
	ApiKey string
	// JWTSecret verifies HS256 service tokens on the Authorization header
	JWTSecret string
	// JWTIssuer is the expected iss claim of service tokens
	JWTIssuer string
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout   int
	WriteTimeout  int
	EnableSwagger bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	// EnableHSTS enables HTTP Strict Transport Security header
	EnableHSTS bool
	// HSTSMaxAge is the max age for HSTS in seconds
	HSTSMaxAge int
	// HSTSIncludeSubdomains applies HSTS to all subdomains
	HSTSIncludeSubdomains bool
	// HSTSPreload adds the preload directive
	HSTSPreload bool
	// ContentSecurityPolicy sets the CSP header value
	ContentSecurityPolicy string
	// FrameOptions sets X-Frame-Options (e.g. DENY, SAMEORIGIN)
	FrameOptions string
	// ContentTypeNosniff enables X-Content-Type-Options: nosniff
	ContentTypeNosniff bool
	// XSSProtection sets the X-XSS-Protection header value
	XSSProtection string
	// ReferrerPolicy sets the Referrer-Policy header value
	ReferrerPolicy string
	// PermissionsPolicy sets the Permissions-Policy header value
	PermissionsPolicy string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	WhitelistPaths    []string
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// JobTimeoutDuration returns the scheduled job timeout as duration
func (p *PlannerConfig) JobTimeoutDuration() time.Duration {
	return time.Duration(p.JobTimeout) * time.Second
}

// RetryBackoffDuration returns the initial per-unit retry delay as duration
func (p *PlannerConfig) RetryBackoffDuration() time.Duration {
	return time.Duration(p.RetryBackoff) * time.Millisecond
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	// Read from config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Credentials come from the environment when not in the config file
	if cfg.Auth.ApiKey == "" {
		cfg.Auth.ApiKey = v.GetString("ADMIN_API_KEY")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Nordrens Planning API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "planning")
	v.SetDefault("database.user", "planning_user")
	v.SetDefault("database.password", "planning_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	// Planner defaults: generation at 06:00, assignment at 06:15 every day
	v.SetDefault("planner.generationCron", "0 0 6 * * *")
	v.SetDefault("planner.assignmentCron", "0 15 6 * * *")
	v.SetDefault("planner.lookaheadDays", 7)
	v.SetDefault("planner.projectedOrders", 3)
	v.SetDefault("planner.jobTimeout", 300)
	v.SetDefault("planner.jobsEnabled", true)
	v.SetDefault("planner.runOnStartup", false)
	v.SetDefault("planner.retryAttempts", 3)
	v.SetDefault("planner.retryBackoff", 100)

	// Auth defaults
	v.SetDefault("auth.jwtIssuer", "nordrens-planning")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "x-api-key"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000) // 1 year
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.xssProtection", "1; mode=block")
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	// Rate limit defaults
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requestsPerMinute", 120)
	v.SetDefault("ratelimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready", "/metrics"})

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
}
