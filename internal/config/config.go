package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"

	"service-courier-tracking/internal/domain"
)

// Config stores service settings.
type Config struct {
	Port           int
	LogLevel       string
	RequestTimeout time.Duration // deadline of one API request, upstream calls included
	GPS            Upstream
	CRM            Upstream
	Cache          Cache
	Location       Location
	RateLimit      RateLimit
	Pprof          Pprof
}

// Pprof stores debug listener settings. An empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Upstream describes an external HTTP API.
type Upstream struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Cache stores session cache settings.
type Cache struct {
	TTL           time.Duration
	PurgeSchedule string // cron expression; empty disables the janitor
}

// Location stores answer composition settings.
type Location struct {
	IncludeCourierPhone bool
	DefaultBranch       string
	Branches            map[string]domain.Coordinates
}

// RateLimit stores inbound per-IP limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:           DefaultPort(),
		LogLevel:       defaultLogLevel,
		RequestTimeout: DefaultRequestTimeout(),
		GPS:            DefaultGPS(),
		CRM:            DefaultCRM(),
		Cache:          DefaultCache(),
		Location:       DefaultLocation(),
		RateLimit:      DefaultRateLimit(),
	}

	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	var err error
	if c.Port, err = envInt("PORT", c.Port); err != nil {
		return err
	}
	c.LogLevel = envString("LOG_LEVEL", c.LogLevel)
	if c.RequestTimeout, err = envDuration("REQUEST_TIMEOUT", c.RequestTimeout); err != nil {
		return err
	}

	c.GPS.BaseURL = envString("GPS_BASE_URL", c.GPS.BaseURL)
	c.GPS.Token = os.Getenv("GPS_TOKEN")
	if c.GPS.Timeout, err = envDuration("GPS_TIMEOUT", c.GPS.Timeout); err != nil {
		return err
	}

	c.CRM.BaseURL = envString("CRM_BASE_URL", c.CRM.BaseURL)
	c.CRM.Token = os.Getenv("CRM_TOKEN")
	if c.CRM.Timeout, err = envDuration("CRM_TIMEOUT", c.CRM.Timeout); err != nil {
		return err
	}

	if c.Cache.TTL, err = envDuration("CACHE_TTL", c.Cache.TTL); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("CACHE_PURGE_SCHEDULE"); ok {
		c.Cache.PurgeSchedule = strings.TrimSpace(v)
	}

	if c.Location.IncludeCourierPhone, err = envBool("LOCATION_INCLUDE_COURIER_PHONE", c.Location.IncludeCourierPhone); err != nil {
		return err
	}
	c.Location.DefaultBranch = domain.NormalizeBranch(envString("DEFAULT_BRANCH", c.Location.DefaultBranch))
	if v := strings.TrimSpace(os.Getenv("BRANCH_COORDINATES")); v != "" {
		if c.Location.Branches, err = ParseBranches(v); err != nil {
			return err
		}
	}

	if c.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled); err != nil {
		return err
	}
	if c.RateLimit.Rate, err = envFloat("RATE_LIMIT_RATE", c.RateLimit.Rate); err != nil {
		return err
	}
	if c.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", c.RateLimit.Burst); err != nil {
		return err
	}
	if c.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", c.RateLimit.TTL); err != nil {
		return err
	}
	if c.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", c.RateLimit.MaxBuckets); err != nil {
		return err
	}

	c.Pprof.Addr = envString("PPROF_ADDR", c.Pprof.Addr)
	c.Pprof.User = os.Getenv("PPROF_USER")
	c.Pprof.Pass = os.Getenv("PPROF_PASS")
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.GPS.Token == "" {
		return errors.New("GPS_TOKEN is required")
	}
	if c.CRM.Token == "" {
		return errors.New("CRM_TOKEN is required")
	}
	if c.GPS.BaseURL == "" || c.CRM.BaseURL == "" {
		return errors.New("upstream base url must not be empty")
	}
	if c.GPS.Timeout <= 0 || c.CRM.Timeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}
	// a cache miss costs two GPS and two CRM calls in sequence
	if budget := 2*c.GPS.Timeout + 2*c.CRM.Timeout; c.RequestTimeout < budget {
		return fmt.Errorf("REQUEST_TIMEOUT %s is shorter than the upstream budget %s", c.RequestTimeout, budget)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("invalid CACHE_TTL: %s", c.Cache.TTL)
	}
	if c.Cache.PurgeSchedule != "" {
		if _, err := cron.ParseStandard(c.Cache.PurgeSchedule); err != nil {
			return fmt.Errorf("invalid CACHE_PURGE_SCHEDULE: %w", err)
		}
	}
	if !c.knownBranch(c.Location.DefaultBranch) {
		return fmt.Errorf("default branch %q has no coordinates", c.Location.DefaultBranch)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate limit rate and burst must be positive")
	}
	return nil
}

func (c *Config) knownBranch(name string) bool {
	if _, ok := c.Location.Branches[name]; ok {
		return true
	}
	_, ok := domain.DefaultBranches[name]
	return ok
}

// ParseBranches parses "name:lat,long;name:lat,long". Names are normalized.
func ParseBranches(s string) (map[string]domain.Coordinates, error) {
	out := make(map[string]domain.Coordinates)
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		name, coords, ok := strings.Cut(part, ":")
		name = domain.NormalizeBranch(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid BRANCH_COORDINATES entry %q", part)
		}
		latS, longS, ok := strings.Cut(coords, ",")
		if !ok {
			return nil, fmt.Errorf("invalid BRANCH_COORDINATES entry %q", part)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latS), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude for branch %q: %w", name, err)
		}
		long, err := strconv.ParseFloat(strings.TrimSpace(longS), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude for branch %q: %w", name, err)
		}
		out[name] = domain.Coordinates{Lat: lat, Long: long}
	}
	if len(out) == 0 {
		return nil, errors.New("BRANCH_COORDINATES has no entries")
	}
	return out, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
