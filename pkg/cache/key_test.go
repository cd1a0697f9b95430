package cache

import (
	"fmt"
	"strings"
	"testing"
)

func TestKey_Deterministic(t *testing.T) {
	tests := []struct {
		name       string
		scope      string
		identifier string
	}{
		{"plain identifier", "weather", "stations"},
		{"uri identifier", "weather", "https://api.example.com/v2/current.json?lang=en&units=metric"},
		{"empty identifier", "weather", ""},
		{"identifier with separator", "weather", "a__b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Key(tt.scope, tt.identifier)
			second := Key(tt.scope, tt.identifier)

			if first != second {
				t.Errorf("Key() not deterministic: %q != %q", first, second)
			}
			if !strings.HasPrefix(first, tt.scope+":") {
				t.Errorf("Key() = %q, want prefix %q", first, tt.scope+":")
			}
		})
	}
}

func TestKey_ScopeSeparation(t *testing.T) {
	identifier := "https://api.example.com/v2/current.json"

	a := Key("weather", identifier)
	b := Key("stocks", identifier)

	if a == b {
		t.Errorf("Keys for different scopes must differ, both = %q", a)
	}
}

func TestKey_NoCollisions(t *testing.T) {
	const n = 2000

	seen := make(map[string]string, n)
	for i := 0; i < n; i++ {
		identifier := fmt.Sprintf("https://api.example.com/v2/items.json?page=%d&q=term-%d", i, i)
		key := Key("weather", identifier)

		if prev, ok := seen[key]; ok {
			t.Fatalf("collision: %q and %q both map to %q", prev, identifier, key)
		}
		seen[key] = identifier
	}
}
