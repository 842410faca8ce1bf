package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"fms-dashboard/pkg/workhours"
)

const (
	StoreDriverPostgREST = "postgrest"
	StoreDriverSQLite    = "sqlite"
)

// validate caches struct info between loads
var validate = validator.New()

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Dashboard specifics
	Store     StoreConfig
	Dashboard DashboardConfig
	RateLimit RateLimitConfig
	TeamCache TeamCacheConfig

	// Chat assistant
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type HTTPServerConfig struct {
	Port           int    `validate:"min=1,max=65535"`
	Mode           string `validate:"oneof=debug release test"`
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"oneof=debug development production"`
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

type StoreConfig struct {
	Driver    string `validate:"oneof=postgrest sqlite"`
	PostgREST PostgRESTConfig
	SQLite    SQLiteConfig
}

type PostgRESTConfig struct {
	URL     string `validate:"omitempty,url"`
	APIKey  string
	Schema  string
	Timeout time.Duration
}

type SQLiteConfig struct {
	Path string
}

type DashboardConfig struct {
	Timezone         string `validate:"required"`
	WorkdayStartHour int    `validate:"min=0,max=23"`
	WorkdayEndHour   int    `validate:"min=1,max=24,gtfield=WorkdayStartHour"`
	OffDays          []string
}

type RateLimitConfig struct {
	PerMin     int `validate:"min=0"`
	MaxClients int `validate:"min=0"`
}

type TeamCacheConfig struct {
	Size int `validate:"min=0"`
	TTL  time.Duration
}

// AssistantConfig holds the chat assistant and its LLM provider chain
type AssistantConfig struct {
	Enabled         bool
	AgentURL        string `validate:"omitempty,url"`
	FallbackEnabled bool
	RetryAttempts   int `validate:"min=0"`
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
	Providers       []ProviderConfig `validate:"dive"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `validate:"required"`
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string `validate:"omitempty,url"`
	Model    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/fms-dashboard/
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/fms-dashboard/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = splitList(v.GetStringSlice("http_server.allowed_origins"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Store
	cfg.Store.Driver = v.GetString("store.driver")
	cfg.Store.PostgREST.URL = v.GetString("store.postgrest.url")
	cfg.Store.PostgREST.APIKey = expandEnvVar(v, v.GetString("store.postgrest.api_key"))
	cfg.Store.PostgREST.Schema = v.GetString("store.postgrest.schema")
	cfg.Store.PostgREST.Timeout = v.GetDuration("store.postgrest.timeout")
	if url := v.GetString("postgrest_url"); url != "" {
		cfg.Store.PostgREST.URL = url
	}
	if key := v.GetString("postgrest_api_key"); key != "" {
		cfg.Store.PostgREST.APIKey = key
	}
	cfg.Store.SQLite.Path = v.GetString("store.sqlite.path")
	if path := v.GetString("sqlite_path"); path != "" {
		cfg.Store.SQLite.Path = path
	}

	// Dashboard
	cfg.Dashboard.Timezone = v.GetString("dashboard.timezone")
	if tz := v.GetString("dashboard_timezone"); tz != "" {
		cfg.Dashboard.Timezone = tz
	}
	cfg.Dashboard.WorkdayStartHour = v.GetInt("dashboard.workday_start_hour")
	cfg.Dashboard.WorkdayEndHour = v.GetInt("dashboard.workday_end_hour")
	cfg.Dashboard.OffDays = splitList(v.GetStringSlice("dashboard.off_days"))

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.TeamCache.Size = v.GetInt("team_cache.size")
	cfg.TeamCache.TTL = v.GetDuration("team_cache.ttl")

	// Assistant
	cfg.Assistant.Enabled = v.GetBool("assistant.enabled")
	cfg.Assistant.AgentURL = v.GetString("assistant.agent_url")
	if agentURL := v.GetString("assistant_agent_url"); agentURL != "" {
		cfg.Assistant.AgentURL = agentURL
	}
	cfg.Assistant.FallbackEnabled = v.GetBool("assistant.fallback_enabled")
	cfg.Assistant.RetryAttempts = v.GetInt("assistant.retry_attempts")
	cfg.Assistant.RetryDelay = v.GetDuration("assistant.retry_delay")
	cfg.Assistant.MaxTotalTimeout = v.GetDuration("assistant.max_total_timeout")

	if providersList, ok := v.Get("assistant.providers").([]interface{}); ok {
		for _, p := range providersList {
			providerMap, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			cfg.Assistant.Providers = append(cfg.Assistant.Providers, ProviderConfig{
				Name:     getStringFromMap(providerMap, "name"),
				Enabled:  getBoolFromMap(providerMap, "enabled"),
				Priority: getIntFromMap(providerMap, "priority"),
				APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
				BaseURL:  getStringFromMap(providerMap, "base_url"),
				Model:    getStringFromMap(providerMap, "model"),
			})
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Store.Driver == StoreDriverPostgREST && cfg.Store.PostgREST.URL == "" {
		return nil, fmt.Errorf("invalid config: store.postgrest.url is required for the %s driver", StoreDriverPostgREST)
	}
	if cfg.Store.Driver == StoreDriverSQLite && cfg.Store.SQLite.Path == "" {
		return nil, fmt.Errorf("invalid config: store.sqlite.path is required for the %s driver", StoreDriverSQLite)
	}
	if _, err := cfg.Dashboard.Calendar(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("store.driver", StoreDriverPostgREST)
	v.SetDefault("store.postgrest.schema", "public")
	v.SetDefault("store.postgrest.timeout", "15s")
	v.SetDefault("store.sqlite.path", "data/fms.db")

	v.SetDefault("dashboard.timezone", "Asia/Kolkata")
	v.SetDefault("dashboard.workday_start_hour", workhours.DefaultStartHour)
	v.SetDefault("dashboard.workday_end_hour", workhours.DefaultEndHour)
	v.SetDefault("dashboard.off_days", []string{"sunday"})

	v.SetDefault("rate_limit.per_min", 120)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("team_cache.size", 256)
	v.SetDefault("team_cache.ttl", "10m")

	v.SetDefault("assistant.enabled", true)
	v.SetDefault("assistant.fallback_enabled", true)
	v.SetDefault("assistant.retry_attempts", 2)
	v.SetDefault("assistant.retry_delay", "1s")
	v.SetDefault("assistant.max_total_timeout", "90s")
}

// Calendar converts the dashboard section into a working-hours calendar.
func (d DashboardConfig) Calendar() (workhours.Calendar, error) {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return workhours.Calendar{}, fmt.Errorf("dashboard.timezone %q: %w", d.Timezone, err)
	}

	cal := workhours.Calendar{
		Location:  loc,
		StartHour: d.WorkdayStartHour,
		EndHour:   d.WorkdayEndHour,
	}
	for _, name := range d.OffDays {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return workhours.Calendar{}, fmt.Errorf("dashboard.off_days: unknown weekday %q", name)
		}
		cal.OffDays = append(cal.OffDays, day)
	}
	return cal, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
