package agentclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fms-dashboard/pkg/agentclient"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "answer", status: 200, body: `{"answer":"a"}`, want: "a"},
		{name: "response field", status: 200, body: `{"response":"r"}`, want: "r"},
		{name: "message field", status: 200, body: `{"message":"m"}`, want: "m"},
		{name: "text field", status: 200, body: `{"text":"t"}`, want: "t"},
		{name: "answer wins", status: 200, body: `{"text":"t","answer":"a"}`, want: "a"},
		{name: "empty", status: 200, body: `{}`, wantErr: true},
		{name: "server error", status: 500, body: `boom`, wantErr: true},
		{name: "bad json", status: 200, body: `nope`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got agentclient.Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := agentclient.New(agentclient.Config{URL: srv.URL})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			reply, err := c.Ask(context.Background(), &agentclient.Request{Question: "q", CompanyName: "Acme"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Ask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if reply != tt.want {
				t.Errorf("Ask() = %q, want %q", reply, tt.want)
			}
			if got.Question != "q" || got.CompanyName != "Acme" || got.ChatHistory == nil {
				t.Errorf("request = %+v", got)
			}
		})
	}
}

func TestAskEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer":""}`))
	}))
	defer srv.Close()

	c, _ := agentclient.New(agentclient.Config{URL: srv.URL})
	if _, err := c.Ask(context.Background(), &agentclient.Request{Question: "q"}); !errors.Is(err, agentclient.ErrEmptyReply) {
		t.Errorf("error = %v, want ErrEmptyReply", err)
	}
}

func TestNewRequiresURL(t *testing.T) {
	if _, err := agentclient.New(agentclient.Config{}); err == nil {
		t.Fatal("expected error")
	}
}
