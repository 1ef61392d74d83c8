package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrMissingConfiguration is returned when the store connection settings are absent.
var ErrMissingConfiguration = errors.New("missing configuration")

type Config struct {
	Port          string
	PublicHost    string
	DatabaseURL   string `validate:"required"`
	RunMigrations bool

	StorageURL  string `validate:"required,url"`
	MediaBucket string `validate:"required"`

	RedisAddr string
	CacheTTL  time.Duration

	SessionSecret string `validate:"required,min=16"`
	SessionTTL    time.Duration

	DefaultGym    string   `validate:"required"`
	DefaultBranch string   `validate:"required"`
	KnownBranches []string `validate:"min=1"`

	BookingURL      string `validate:"required,url"`
	MembershipPhone string `validate:"required,numeric"`
	TrainingPhone   string `validate:"required,numeric"`

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		PublicHost:    os.Getenv("PUBLIC_HOST"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", false),

		StorageURL:  strings.TrimRight(os.Getenv("STORAGE_URL"), "/"),
		MediaBucket: getEnv("MEDIA_BUCKET", "gym-media"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getEnvDuration("CACHE_TTL", time.Minute),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 30*time.Minute),

		DefaultGym:    getEnv("DEFAULT_GYM", "eagle-gym"),
		DefaultBranch: getEnv("DEFAULT_BRANCH", "fostat"),
		KnownBranches: getEnvList("KNOWN_BRANCHES", "boolaq,qoopa,fostat"),

		BookingURL:      strings.TrimRight(getEnv("BOOKING_URL", "https://wa.me"), "/"),
		MembershipPhone: getEnv("MEMBERSHIP_PHONE", "201507817517"),
		TrainingPhone:   getEnv("TRAINING_PHONE", "201028188900"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once, wrapped in ErrMissingConfiguration.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrMissingConfiguration, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(fields, ", "))
}

// IsKnownBranch reports whether slug may appear as a branch path segment.
func (c *Config) IsKnownBranch(slug string) bool {
	for _, b := range c.KnownBranches {
		if b == slug {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvList(key, defaultValue string) []string {
	var out []string
	for _, p := range strings.Split(getEnv(key, defaultValue), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
