package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables honored for compatibility with older rc files
const (
	EnvLogLevel      = "ZSHRC_LOG_LEVEL"
	EnvForceUpdate   = "ZSHRC_FORCE_UPDATE"
	EnvSSHConnection = "SSH_CONNECTION"
	EnvSSHTTY        = "SSH_TTY"

	// EnvPrefix marks structured overrides, e.g. ZSHBOOT_SYNC__REMOTE_URL
	EnvPrefix = "ZSHBOOT_"
)

// Load builds the configuration from every source. configFile may be empty
// or point at a file that does not exist. The legacy variables are read
// through getenv; nil means os.Getenv.
func Load(configFile string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
			}
		}
	}

	// 3. ZSHBOOT_SECTION__KEY variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Legacy variables
	legacy, err := legacyOverrides(getenv)
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(legacy, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load legacy env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Sync.RemoteURL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "sync.remote_url must not be empty")
	}
	return &cfg, nil
}

// IsSSHSession reports whether the process runs inside an SSH login
func IsSSHSession(getenv func(string) string) bool {
	return getenv(EnvSSHConnection) != "" || getenv(EnvSSHTTY) != ""
}

func legacyOverrides(getenv func(string) string) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if v := getenv(EnvLogLevel); v != "" {
		out["log.level"] = v
	}
	if v := getenv(EnvForceUpdate); v != "" {
		force, err := parseFlag(v)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid %s", EnvForceUpdate)
		}
		out["sync.force"] = force
	}
	return out, nil
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", v)
	}
	return b, nil
}
