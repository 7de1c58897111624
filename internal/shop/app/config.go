package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SessionIssuer        string // Required: issuer claim expected on session tokens
	SessionKeyID         string // Key id the identity provider signs under
	SessionPublicKey     string // Optional: PKIX PEM of the identity provider's Ed25519 public key
	SessionPublicKeyFile string // Optional: path to the same PEM on disk

	OTPSecret    string        // Required outside dev: keys the verification cookie HMAC
	OTPTTL       time.Duration // How long an issued verification code stays confirmable (default: 10m)
	CookieSecure bool          // Mark the verification cookie secure-transport-only (default: true in prod)

	SMTPHost string // Optional: SMTP relay for verification emails; empty selects the log mailer
	SMTPPort int
	SMTPFrom string
	SMTPUser string
	SMTPPass string

	DatabaseFile         string        // Path to SQLite database file (default: ./shop.db)
	PepperFile           string        // Path to file containing pepper for password hashing (default: ./pepper)
	CORSOrigin           string        // Origin allowed on the public catalog surface
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	// A local .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{
		SessionIssuer:        getEnvOrDefault("SHOP_SESSION_ISSUER", "loom-id"),
		SessionKeyID:         getEnvOrDefault("SHOP_SESSION_KEY_ID", "loom-id-key-001"),
		SessionPublicKey:     os.Getenv("SHOP_SESSION_PUBLIC_KEY"),
		SessionPublicKeyFile: os.Getenv("SHOP_SESSION_PUBLIC_KEY_FILE"),

		OTPSecret: os.Getenv("SHOP_OTP_SECRET"),
		OTPTTL:    getEnvDurationOrDefault("SHOP_OTP_TTL", 10*time.Minute),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPFrom: getEnvOrDefault("SMTP_FROM", "no-reply@loomandfold.example"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		DatabaseFile:         getEnvOrDefault("SHOP_DATABASE_FILE", "shop.db"),
		PepperFile:           getEnvOrDefault("SHOP_PEPPER_FILE", "pepper"),
		CORSOrigin:           getEnvOrDefault("SHOP_CORS_ORIGIN", "http://localhost:5173"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	cfg.CookieSecure = getEnvBoolOrDefault("SHOP_COOKIE_SECURE", cfg.Env == "prod")

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
