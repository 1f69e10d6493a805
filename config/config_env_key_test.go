package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
		},
		"sync": map[string]any{
			"cascadeOnEdit": nil,
		},
		"display": map[string]any{
			"currency": "",
			"style":    "",
		},
		"env": map[string]any{
			"serviceName": "",
			"log": map[string]any{
				"level": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASE_URL", want: "api.baseUrl"},
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "SYNC_CASCADEONEDIT", want: "sync.cascadeOnEdit"},
		{envKey: "SYNC_CASCADE_ON_EDIT", want: "sync.cascadeOnEdit"},
		{envKey: "DISPLAY_CURRENCY", want: "display.currency"},
		{envKey: "ENV_SERVICE_NAME", want: "env.serviceName"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "API__BASE_URL", want: "api.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestKeysOf_UsesYamlNames(t *testing.T) {
	keys := keysOf(&Config{})

	if got := canonicalizeEnvKey("API_BASE_URL", keys); got != "api.baseUrl" {
		t.Fatalf("canonicalizeEnvKey(API_BASE_URL) = %q, want api.baseUrl", got)
	}
	if got := canonicalizeEnvKey("DISPLAY_STYLE", keys); got != "display.style" {
		t.Fatalf("canonicalizeEnvKey(DISPLAY_STYLE) = %q, want display.style", got)
	}
}
