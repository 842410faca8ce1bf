package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"fms-dashboard/config"
)

func load(t *testing.T, yaml string) (*config.Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	return config.FromViper(v)
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := load(t, `
store:
  postgrest:
    url: http://localhost:3000
`)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.Store.Driver != config.StoreDriverPostgREST {
		t.Errorf("unexpected server/store defaults: %+v %+v", cfg.HTTPServer, cfg.Store)
	}
	if cfg.Store.PostgREST.Timeout != 15*time.Second {
		t.Errorf("PostgREST.Timeout = %v", cfg.Store.PostgREST.Timeout)
	}
	if cfg.TeamCache.TTL != 10*time.Minute || cfg.Assistant.RetryDelay != time.Second {
		t.Errorf("durations = %v / %v", cfg.TeamCache.TTL, cfg.Assistant.RetryDelay)
	}

	cal, err := cfg.Dashboard.Calendar()
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}
	if cal.StartHour != 10 || cal.EndHour != 18 || len(cal.OffDays) != 1 || cal.OffDays[0] != time.Sunday {
		t.Errorf("Calendar() = %+v", cal)
	}
}

func TestFromViperProviders(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "sk-test")

	cfg, err := load(t, `
store:
  driver: sqlite
  sqlite:
    path: /tmp/fms.db
assistant:
  agent_url: http://127.0.0.1:8000/chat
  providers:
    - name: openai
      enabled: true
      priority: 2
      api_key: ${TEST_OPENAI_KEY}
      model: gpt-4o-mini
    - name: local
      enabled: false
      priority: 3
      api_key: plain
`)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if len(cfg.Assistant.Providers) != 2 {
		t.Fatalf("Providers = %+v", cfg.Assistant.Providers)
	}
	p := cfg.Assistant.Providers[0]
	if p.APIKey != "sk-test" || p.Priority != 2 || !p.Enabled || p.Model != "gpt-4o-mini" {
		t.Errorf("Providers[0] = %+v", p)
	}
	if cfg.Assistant.Providers[1].APIKey != "plain" {
		t.Errorf("Providers[1].APIKey = %q", cfg.Assistant.Providers[1].APIKey)
	}
	if cfg.Assistant.AgentURL != "http://127.0.0.1:8000/chat" {
		t.Errorf("AgentURL = %q", cfg.Assistant.AgentURL)
	}
}

func TestFromViperEnvShortcuts(t *testing.T) {
	t.Setenv("POSTGREST_URL", "http://db.internal:3000")
	t.Setenv("DASHBOARD_TIMEZONE", "UTC")

	cfg, err := load(t, `environment: {name: test}`)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if cfg.Store.PostgREST.URL != "http://db.internal:3000" {
		t.Errorf("PostgREST.URL = %q", cfg.Store.PostgREST.URL)
	}
	if cfg.Dashboard.Timezone != "UTC" {
		t.Errorf("Timezone = %q", cfg.Dashboard.Timezone)
	}
}

func TestFromViperInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing postgrest url", yaml: `store: {driver: postgrest}`},
		{name: "unknown driver", yaml: `store: {driver: mongo}`},
		{name: "bad port", yaml: "http_server: {port: 70000}\nstore: {driver: sqlite}"},
		{name: "bad timezone", yaml: "dashboard: {timezone: Mars/Base}\nstore: {driver: sqlite}"},
		{name: "bad off day", yaml: "dashboard: {off_days: [funday]}\nstore: {driver: sqlite}"},
		{name: "inverted window", yaml: "dashboard: {workday_start_hour: 18, workday_end_hour: 10}\nstore: {driver: sqlite}"},
		{name: "provider without name", yaml: "store: {driver: sqlite}\nassistant: {providers: [{model: x}]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(t, tt.yaml); err == nil {
				t.Errorf("FromViper() expected error")
			}
		})
	}
}
