package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	skerrors "github.com/arthur-debert/skinmanager/pkg/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SKINMANAGER_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Defaults returns the embedded default configuration
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigParse, "failed to parse embedded defaults")
	}
	return unmarshal(k)
}

// Load builds the configuration from the embedded defaults, the user file at
// configPath (skipped when absent or empty) and the environment.
func Load(configPath string) (*Config, error) {
	return LoadWithOverrides(configPath, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// "install.root", taken from command line flags.
func LoadWithOverrides(configPath string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User file
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
				return nil, skerrors.Wrapf(err, skerrors.ErrConfigLoad, "failed to load config from %s", configPath).
					WithDetail("path", configPath)
			}
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, skerrors.Wrap(err, skerrors.ErrConfigLoad, "failed to apply flag overrides")
		}
	}

	return unmarshal(k)
}

// parserFor picks the file parser from the extension; TOML unless .yaml/.yml
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return toml.Parser()
}

// envKey maps SKINMANAGER_IMPORT_ON_CONFLICT to import.on_conflict.
// Only the first underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, skerrors.Wrap(err, skerrors.ErrConfigParse, "invalid configuration")
	}
	return &cfg, nil
}
