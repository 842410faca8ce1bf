package log_test

import (
	"context"
	"testing"

	"fms-dashboard/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on bare context = %q, want empty", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "debug", Encoding: "console"},
	}
	for _, cfg := range cases {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(context.Background(), "probe %d", 1)
	}

	log.NewNop().Info(log.WithRequestID(context.Background(), "x"), "silent")
}
