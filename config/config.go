package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultServiceName = "invoicedesk"
	defaultLogLevel    = "info"
	defaultCurrency    = "USD"
	defaultStyle       = "auto"
	dotEnvFile         = ".env"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API locates the REST backend.
	API APIConfig `json:"api" yaml:"api"`

	// Sync tunes the refetch cascade.
	Sync SyncConfig `json:"sync" yaml:"sync"`

	// Display configures terminal rendering.
	Display DisplayConfig `json:"display" yaml:"display"`
}

// APIConfig holds the single value the client needs to reach the backend.
type APIConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
}

// SyncConfig defines when the full refetch runs
type SyncConfig struct {
	// Run the triple refetch after a successful field commit as well as after uploads
	CascadeOnEdit *bool `json:"cascadeOnEdit" yaml:"cascadeOnEdit"`
}

// CascadeEnabled reports the effective cascade setting; it defaults to true.
func (s SyncConfig) CascadeEnabled() bool {
	return s.CascadeOnEdit == nil || *s.CascadeOnEdit
}

// DisplayConfig defines how tables are printed
type DisplayConfig struct {
	// ISO 4217 code used to format prices
	Currency string `json:"currency" yaml:"currency"`

	// glamour style name: auto, dark, light, notty, ascii
	Style string `json:"style" yaml:"style"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads an optional <currEnv>.yaml through koanf, then a .env
// file, then the process environment. Later sources win.
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

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", candidate)
		}

		break
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	existingConfigMap := mergeKeys(keysOf(cfg), koanfInstance.Raw())

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASE_URL -> api.baseUrl
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration (set API_BASE_URL)")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.ServiceName) == "" {
		cfg.Env.ServiceName = defaultServiceName
	}
	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = defaultLogLevel
	}
	if strings.TrimSpace(cfg.Display.Currency) == "" {
		cfg.Display.Currency = defaultCurrency
	}
	if strings.TrimSpace(cfg.Display.Style) == "" {
		cfg.Display.Style = defaultStyle
	}
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
}

// loadDotEnv exports the variables of path that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s failed", path)
	}

	return nil
}

// keysOf lists the yaml keys of the config struct so that env overrides map
// onto camelCase keys even when no yaml file was found.
func keysOf(cfg any) map[string]any {
	out := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "yaml",
		Result:  &out,
	})
	if err != nil {
		return out
	}
	if err := decoder.Decode(cfg); err != nil {
		return map[string]any{}
	}

	return out
}

// mergeKeys overlays src onto dst, descending into nested maps.
func mergeKeys(dst, src map[string]any) map[string]any {
	for key, value := range src {
		srcChild, srcIsMap := value.(map[string]any)
		dstChild, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = mergeKeys(dstChild, srcChild)

			continue
		}
		dst[key] = value
	}

	return dst
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := slices.DeleteFunc(strings.Split(strings.ToLower(rawKey), "_"), func(s string) bool {
		return s == ""
	})
	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		// Greedy: the longest run of segments that names an existing key
		// wins, so BASE_URL matches baseUrl.
		matched := false
		for j := len(segments); j > i; j-- {
			joined := strings.Join(segments[i:j], "")
			if key, next, ok := findExistingSegment(current, joined); ok {
				canonical = append(canonical, key)
				current = next
				i = j
				matched = true

				break
			}
		}
		if matched {
			continue
		}

		canonical = append(canonical, segments[i])
		current = nil
		i++
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
