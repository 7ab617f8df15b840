package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFetch(t *testing.T) {
	payload := map[string]interface{}{
		"weather": []map[string]interface{}{
			{"description": "scattered clouds"},
		},
		"main": map[string]interface{}{
			"temp":       31.4,
			"feels_like": 35.2,
			"humidity":   68,
		},
		"wind": map[string]interface{}{
			"speed": 3.6,
		},
	}

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &Client{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	snapshot, err := client.Fetch(context.Background(), "Delhi", "IN")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Delhi,IN", gotQuery)
	assert.Equal(t, "Delhi", snapshot.City)
	assert.Equal(t, 31.4, snapshot.Temperature)
	assert.Equal(t, 35.2, snapshot.FeelsLike)
	assert.Equal(t, "Scattered Clouds", snapshot.Condition)
	assert.Equal(t, 68, snapshot.Humidity)
	assert.Equal(t, 3.6, snapshot.WindSpeed)
}

func TestFetchWithoutCountryCode(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"description":"haze"}],"main":{"temp":20,"feels_like":20,"humidity":50},"wind":{"speed":1}}`))
	}))
	defer srv.Close()

	client := &Client{apiKey: "test-key", baseURL: srv.URL, httpClient: srv.Client()}

	_, err := client.Fetch(context.Background(), "Delhi", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Delhi", gotQuery)
}

func TestFetchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := &Client{apiKey: "bad-key", baseURL: srv.URL, httpClient: srv.Client()}

	_, err := client.Fetch(context.Background(), "Delhi", "IN")

	assert.NotEqual(t, nil, err)
	assert.MatchRegex(t, err.Error(), "Invalid API key")
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"scattered clouds", "Scattered Clouds"},
		{"haze", "Haze"},
		{"", ""},
		{"light intensity drizzle", "Light Intensity Drizzle"},
	}

	for _, tt := range tests {
		got := titleCase(tt.input)
		if got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
