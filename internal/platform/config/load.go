package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option adjusts how Load finds and layers configuration.
type Option func(*loader)

type loader struct {
	dir       string
	overrides map[string]any
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithOverride sets key after every other layer, env vars included.
// taskview maps flags such as --server onto it. Empty string values are
// ignored so an unset flag does not clear the configured value.
func WithOverride(key string, value any) Option {
	return func(l *loader) {
		if s, ok := value.(string); ok && s == "" {
			return
		}
		l.overrides[key] = value
	}
}

// Load builds the configuration for profile from, lowest precedence first:
// built-in defaults, base.yaml, <profile>.yaml, APP_* environment variables
// and overrides. The result is validated before it is returned.
//
// An env var is matched against the keys the earlier layers defined, so
// APP_CLIENT_RETRY_MAX_ATTEMPTS sets client.retry.max_attempts rather than
// client.retry.max.attempts.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: "configs", overrides: map[string]any{}}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")
	if err := setAll(k, defaults()); err != nil {
		return nil, err
	}

	for _, name := range []string{"base.yaml", profile + ".yaml"} {
		path := filepath.Join(l.dir, name)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeys(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := setAll(k, l.overrides); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setAll(k *koanf.Koanf, values map[string]any) error {
	for key, v := range values {
		if err := k.Set(key, v); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

// envKeys maps APP_SERVER_READ_TIMEOUT to the known key server.read_timeout.
// Unknown variables fall back to replacing every underscore with a dot.
func envKeys(known []string) func(string, string) (string, any) {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byEnv[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// checkProfile rejects names that would escape the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	}
	return nil
}
