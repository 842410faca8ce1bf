package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestParseContentRange(t *testing.T) {
	tests := []struct {
		header  string
		want    int
		wantErr bool
	}{
		{"0-24/3573", 3573, false},
		{"*/0", 0, false},
		{"0-9/*", 0, true},
		{"", 0, true},
		{"0-9/abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseContentRange(tt.header)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseContentRange(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseContentRange(%q) = %d, want %d", tt.header, got, tt.want)
		}
	}
}

func TestClientHeaders(t *testing.T) {
	var got http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Range", "*/4")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", "anon-key", "public", 0)
	n, err := c.Count(context.Background(), "FMS", url.Values{})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}
	if got.Get("apikey") != "anon-key" || got.Get("Authorization") != "Bearer anon-key" {
		t.Errorf("missing auth headers: %v", got)
	}
	if got.Get("Prefer") != "count=exact" || got.Get("Accept-Profile") != "public" {
		t.Errorf("missing postgrest headers: %v", got)
	}
}

func TestQuote(t *testing.T) {
	if got := quote(`a,b "c"`); got != `"a,b \"c\""` {
		t.Errorf("quote() = %s", got)
	}
}
