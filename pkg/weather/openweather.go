package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"unicode"
)

// Snapshot is the current-conditions reading for one city.
type Snapshot struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Condition   string
	Humidity    int
	WindSpeed   float64
}

// Client fetches current weather from the OpenWeatherMap REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5/weather",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Fetch(ctx context.Context, city, countryCode string) (*Snapshot, error) {
	query := city
	if countryCode != "" {
		query = city + "," + countryCode
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openweather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr owError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("openweather API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("openweather API error: status %d", resp.StatusCode)
	}

	var raw owResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("openweather decode: %w", err)
	}

	condition := ""
	if len(raw.Weather) > 0 {
		condition = titleCase(raw.Weather[0].Description)
	}

	return &Snapshot{
		City:        city,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Condition:   condition,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
	}, nil
}

// titleCase capitalizes each word of the API's lowercase descriptions
// ("scattered clouds" -> "Scattered Clouds").
func titleCase(s string) string {
	out := []rune(s)
	prevSpace := true
	for i, r := range out {
		if prevSpace {
			out[i] = unicode.ToUpper(r)
		}
		prevSpace = unicode.IsSpace(r)
	}
	return string(out)
}

type owResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owError struct {
	Message string `json:"message"`
}
