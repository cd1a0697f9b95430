package config

import (
	"testing"
	"time"
)

func validSettings() Settings {
	return Settings{
		Name:   "weather",
		APIURL: "https://api.example.com/v2",
		Actions: map[string]string{
			"current": "/current.json",
		},
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{
			name:    "valid settings",
			mutate:  func(s *Settings) {},
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(s *Settings) { s.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing api url",
			mutate:  func(s *Settings) { s.APIURL = "" },
			wantErr: true,
		},
		{
			name:    "relative api url",
			mutate:  func(s *Settings) { s.APIURL = "/just/a/path" },
			wantErr: true,
		},
		{
			name:    "no actions",
			mutate:  func(s *Settings) { s.Actions = nil },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(s *Settings) { s.TimeoutSeconds = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_Validate_DefaultTimeout(t *testing.T) {
	s := validSettings()

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	if s.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want default %d", s.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if s.Timeout() != time.Duration(DefaultTimeoutSeconds)*time.Second {
		t.Errorf("Timeout() = %v, want %v", s.Timeout(), time.Duration(DefaultTimeoutSeconds)*time.Second)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CONNECTOR_NAME", "weather")
	t.Setenv("CONNECTOR_API_URL", "https://api.example.com/v2")
	t.Setenv("CONNECTOR_TIMEOUT", "5")
	t.Setenv("CONNECTOR_ACTIONS", "current:/current.json,forecast:/forecast.json")
	t.Setenv("CONNECTOR_PARAMETERS", "lang:en,units:metric")
	t.Setenv("CONNECTOR_USE_FALLBACK_CACHE", "true")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}

	if s.Name != "weather" {
		t.Errorf("Name = %q, want %q", s.Name, "weather")
	}
	if s.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d, want 5", s.TimeoutSeconds)
	}
	if got := s.Actions["forecast"]; got != "/forecast.json" {
		t.Errorf("Actions[forecast] = %q, want %q", got, "/forecast.json")
	}
	if got := s.Parameters["units"]; got != "metric" {
		t.Errorf("Parameters[units] = %q, want %q", got, "metric")
	}
	if !s.UseFallbackCache {
		t.Error("UseFallbackCache = false, want true")
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("CONNECTOR_NAME", "weather")
	t.Setenv("CONNECTOR_API_URL", "")

	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() with missing api url should fail")
	}
}

func TestSettings_HasBasicAuth(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"both set", "user", "secret", true},
		{"only username", "user", "", false},
		{"only password", "", "secret", false},
		{"neither", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{Username: tt.username, Password: tt.password}
			if got := s.HasBasicAuth(); got != tt.want {
				t.Errorf("HasBasicAuth() = %v, want %v", got, tt.want)
			}
		})
	}
}
