// Package config loads the layered configuration: a YAML file merged with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath       = "."
	defaultStreamPath = "/stream"
	defaultPagePath   = "/"
	defaultLogoURL    = "/static/images/logo-menfes.jpeg"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	// Board points at the server-rendered page this client mirrors.
	Board BoardConfig `json:"board" yaml:"board"`

	// Firebase configuration for the real-time feeds and push messaging.
	// Nil disables the primary real-time channel and activates the SSE
	// fallback.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Push configuration for the token gateway.
	Push *PushConfig `json:"push" yaml:"push"`

	// Storage configuration for the browser-local key-value store.
	Storage StorageConfig `json:"storage" yaml:"storage"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BoardConfig defines where the board server lives and which page to mirror.
type BoardConfig struct {
	BaseURL    string `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	PagePath   string `json:"pagePath" yaml:"pagePath"`     // Path of the mirrored page, default "/".
	StreamPath string `json:"streamPath" yaml:"streamPath"` // SSE fallback endpoint, default "/stream".
	LogoURL    string `json:"logoUrl" yaml:"logoUrl"`       // Toast logo, default the bundled board logo.
}

// FirebaseConfig defines the Firebase project used for feeds and messaging.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId" validate:"required"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	APIKey          string `json:"apiKey" yaml:"apiKey"` // Web API key for anonymous sign-in.
}

// PushConfig defines the push provider's token gateway.
type PushConfig struct {
	GatewayURL string `json:"gatewayUrl" yaml:"gatewayUrl" validate:"required,url"`
	VAPIDKey   string `json:"vapidKey" yaml:"vapidKey"`

	// Permission is the decision the embedding environment reports when
	// the permission prompt fires: granted, denied, or default (treated
	// as a dismissed prompt).
	Permission string `json:"permission" yaml:"permission"`
}

// StorageConfig defines where the local key-value store persists.
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIREBASE_PROJECTID -> firebase.projectId (not firebase.projectid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Board.PagePath == "" {
		cfg.Board.PagePath = defaultPagePath
	}
	if cfg.Board.StreamPath == "" {
		cfg.Board.StreamPath = defaultStreamPath
	}
	if cfg.Board.LogoURL == "" {
		cfg.Board.LogoURL = defaultLogoURL
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config failed")
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
