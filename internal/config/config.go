package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds everything the pipeline needs for one process lifetime.
// It is loaded once at startup and never mutated afterwards.
type Config struct {
	LLMAPIKey   string `json:"llmApiKey"`
	LLMProvider string `json:"llmProvider"`

	WeatherAPIKey string `json:"weatherApiKey"`
	City          string `json:"city"`
	CountryCode   string `json:"countryCode"`

	GmailAddress     string `json:"gmailAddress"`
	GmailAppPassword string `json:"gmailAppPassword"`
	RecipientAddress string `json:"recipientAddress"`

	SMTPHost string `json:"smtpHost"`
	SMTPPort int    `json:"smtpPort"`
	IMAPAddr string `json:"imapAddr"`

	BBCFeedURL string `json:"bbcFeedUrl"`
	TOIFeedURL string `json:"toiFeedUrl"`

	NewsLimit  int `json:"newsLimit"`
	InboxLimit int `json:"inboxLimit"`

	TriggerTime string `json:"triggerTime"`
	Timezone    string `json:"timezone"`
	StatusAddr  string `json:"statusAddr"`

	// Parsed from TriggerTime/Timezone during Load.
	TriggerHour   int            `json:"-"`
	TriggerMinute int            `json:"-"`
	Location      *time.Location `json:"-"`
}

// Load reads the JSON config file, layers environment overrides for
// credentials on top, fills defaults, and validates. It must succeed
// before any network call is made.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	overrideFromEnv(&cfg)
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	trigger, err := time.Parse("15:04", cfg.TriggerTime)
	if err != nil {
		return nil, fmt.Errorf("invalid triggerTime %q (want HH:MM): %w", cfg.TriggerTime, err)
	}
	cfg.TriggerHour = trigger.Hour()
	cfg.TriggerMinute = trigger.Minute()

	return &cfg, nil
}

// Credentials may come from the environment instead of the file so the
// file can be committed without secrets.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.WeatherAPIKey = v
	}
	if v := os.Getenv("GMAIL_ADDRESS"); v != "" {
		cfg.GmailAddress = v
	}
	if v := os.Getenv("GMAIL_APP_PASSWORD"); v != "" {
		cfg.GmailAppPassword = v
	}
	if v := os.Getenv("RECIPIENT_ADDRESS"); v != "" {
		cfg.RecipientAddress = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = ProviderOpenAI
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if cfg.IMAPAddr == "" {
		cfg.IMAPAddr = "imap.gmail.com:993"
	}
	if cfg.BBCFeedURL == "" {
		cfg.BBCFeedURL = "http://feeds.bbci.co.uk/news/rss.xml"
	}
	if cfg.TOIFeedURL == "" {
		cfg.TOIFeedURL = "https://timesofindia.indiatimes.com/rssfeedstopstories.cms"
	}
	if cfg.NewsLimit == 0 {
		cfg.NewsLimit = 9
	}
	if cfg.InboxLimit == 0 {
		cfg.InboxLimit = 5
	}
	if cfg.TriggerTime == "" {
		cfg.TriggerTime = "07:00"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Kolkata"
	}
}

func validate(cfg *Config) error {
	required := []struct {
		name  string
		value string
	}{
		{"llmApiKey", cfg.LLMAPIKey},
		{"weatherApiKey", cfg.WeatherAPIKey},
		{"city", cfg.City},
		{"gmailAddress", cfg.GmailAddress},
		{"gmailAppPassword", cfg.GmailAppPassword},
		{"recipientAddress", cfg.RecipientAddress},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("missing required config field: %s", f.name)
		}
	}

	if cfg.LLMProvider != ProviderOpenAI && cfg.LLMProvider != ProviderAnthropic {
		return fmt.Errorf("unknown llmProvider %q (want %q or %q)", cfg.LLMProvider, ProviderOpenAI, ProviderAnthropic)
	}

	return nil
}
