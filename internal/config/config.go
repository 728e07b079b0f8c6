package config // package config loads application configuration from environment variables

import (
	"errors"  // errors joins validation problems into one error
	"fmt"     // fmt formats validation messages
	"os"      // os provides access to environment variables
	"strings" // strings normalises the environment name
	"time"    // time parses durations for timeouts

	"github.com/joho/godotenv" // godotenv loads a local .env file before reading variables
)

// DefaultAdminPassword is used when ADMIN_PASSWORD is not set.  Startup logs
// a warning whenever it is in effect.
const DefaultAdminPassword = "admin123"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable or to a group of them (the nested configs).
type Config struct {
	Env     string // application environment (dev, prod)
	Port    string // HTTP port to listen on
	SiteURL string // public base URL of the site

	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	DBAutoMigrate bool   // apply the embedded schema at startup

	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Mail      MailConfig
	Queue     QueueConfig
	Content   ContentConfig
}

// AuthConfig configures the shared admin password, token signing and the
// per-address login attempt limiter.
type AuthConfig struct {
	Password    string        // plain password or bcrypt hash
	TokenSecret string        // HMAC key; falls back to Password
	TokenTTL    time.Duration // maximum token age
	MaxAttempts int           // attempts allowed per window
	Window      time.Duration // window measured from the first attempt
	MaxTracked  int           // bound on addresses kept in memory
	Backend     string        // "memory" or "redis"
	Prefix      string        // redis key prefix
}

// ContentConfig tunes the content resolver.
type ContentConfig struct {
	ReadTimeout      time.Duration // per collection read
	BreakerFailures  uint32        // consecutive failures before the breaker opens
	BreakerOpenFor   time.Duration // how long the breaker stays open
	BreakerHalfOpens uint32        // trial requests allowed while half-open
}

// Load reads the optional .env file, then environment variables, and
// returns a validated Config.  Every problem found is reported at once.
func Load() (Config, error) {
	_ = godotenv.Load() // a missing .env is normal outside local development

	password := envStr("ADMIN_PASSWORD", DefaultAdminPassword)
	cfg := Config{
		Env:           strings.ToLower(envStr("APP_ENV", "prod")),
		Port:          envStr("APP_PORT", "8080"),
		SiteURL:       envStr("SITE_URL", "http://localhost:8080"),
		DBUser:        envStr("DB_USER", "root"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envStr("DB_PORT", "3306"),
		DBName:        os.Getenv("DB_NAME"),
		DBAutoMigrate: envBool("DB_AUTO_MIGRATE", false),

		Redis:     LoadRedisConfig(),
		Cache:     LoadCacheConfig(),
		RateLimit: LoadRateLimitConfig(),
		Auth: AuthConfig{
			Password:    password,
			TokenSecret: envStr("ADMIN_TOKEN_SECRET", password),
			TokenTTL:    envDur("ADMIN_TOKEN_TTL", 24*time.Hour),
			MaxAttempts: envInt("AUTH_MAX_ATTEMPTS", 5),
			Window:      envDur("AUTH_WINDOW", 15*time.Minute),
			MaxTracked:  envInt("AUTH_MAX_TRACKED", 10000),
			Backend:     strings.ToLower(envStr("AUTH_LIMIT_BACKEND", "memory")),
			Prefix:      envStr("AUTH_LIMIT_PREFIX", "login"),
		},
		Storage: LoadStorageConfig(),
		Mail:    LoadMailConfig(),
		Queue:   LoadQueueConfig(),
		Content: ContentConfig{
			ReadTimeout:      envDur("CONTENT_READ_TIMEOUT", 3*time.Second),
			BreakerFailures:  uint32(envInt("CONTENT_BREAKER_FAILURES", 5)),
			BreakerOpenFor:   envDur("CONTENT_BREAKER_OPEN_FOR", 30*time.Second),
			BreakerHalfOpens: uint32(envInt("CONTENT_BREAKER_HALF_OPEN", 1)),
		},
	}
	return cfg, cfg.Validate()
}

// Validate reports missing or out-of-range settings.  The returned error
// names every offending variable.
func (c Config) Validate() error {
	var errs []error
	if c.DBHost == "" {
		errs = append(errs, errors.New("missing required env var: DB_HOST"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("missing required env var: DB_NAME"))
	}
	if c.Auth.Password == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD must not be empty"))
	}
	if c.Auth.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("AUTH_MAX_ATTEMPTS must be >= 1, got %d", c.Auth.MaxAttempts))
	}
	if c.Auth.Window <= 0 {
		errs = append(errs, fmt.Errorf("AUTH_WINDOW must be positive, got %s", c.Auth.Window))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ADMIN_TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL))
	}
	if c.Auth.Backend != "memory" && c.Auth.Backend != "redis" {
		errs = append(errs, fmt.Errorf("AUTH_LIMIT_BACKEND must be memory or redis, got %q", c.Auth.Backend))
	}
	if c.Content.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("CONTENT_READ_TIMEOUT must be positive, got %s", c.Content.ReadTimeout))
	}
	return errors.Join(errs...)
}

// IsDev reports whether the service runs in local development mode.
func (c Config) IsDev() bool { return c.Env == "dev" || c.Env == "development" }

// UsingDefaultPassword reports whether ADMIN_PASSWORD was left unset.
func (c Config) UsingDefaultPassword() bool { return c.Auth.Password == DefaultAdminPassword }
