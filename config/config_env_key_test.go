package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId": "",
			"apiKey":    "",
		},
		"board": map[string]any{
			"baseUrl":    "",
			"streamPath": "",
		},
		"push": map[string]any{
			"gatewayUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_APIKEY", want: "firebase.apiKey"},
		{envKey: "BOARD_BASEURL", want: "board.baseUrl"},
		{envKey: "BOARD_STREAMPATH", want: "board.streamPath"},
		{envKey: "PUSH_GATEWAYURL", want: "push.gatewayUrl"},
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
