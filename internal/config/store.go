package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
)

const (
	dirName  = ".spcp"
	fileName = "config.json"
	// EnvPrefix is prepended to upper-cased keys for environment overrides,
	// e.g. SPCP_SITE_ORIGIN.
	EnvPrefix = "SPCP"
)

// ErrUnknownKey is returned by Get and Set for keys that are not settings.
var ErrUnknownKey = errors.New("unknown config key")

// ErrInvalidValue is returned by Set for a value outside a setting's range.
var ErrInvalidValue = errors.New("invalid config value")

var defaults = map[string]any{
	"site.origin":             "",
	"site.web_relative_url":   "/",
	"site.template_id":        "",
	"site.client_tag":         "",
	"site.version":            "",
	"site.central_admin_port": 11111,
	"launch.mode":             "browser",
	"ui.visible_items":        8,
	"log.file":                "",
	"log.debug":               false,
}

// Path returns the config file location: $SPCP_CONFIG, or ~/.spcp/config.json.
func Path() (string, error) {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not find home directory")
	}
	return filepath.Join(homeDir, dirName, fileName), nil
}

// DefaultLogFile returns ~/.spcp/spcp.log, or "" if there is no home directory.
func DefaultLogFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, dirName, "spcp.log")
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newViper(path string, withEnv bool) (*viper.Viper, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	// If file doesn't exist, defaults (and env) are all we have.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return v, nil
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = DefaultLogFile()
	}
	return cfg, nil
}

// LoadConfig reads the config file and environment overrides. A missing file
// yields the defaults.
func LoadConfig() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom is LoadConfig for an explicit file.
func LoadFrom(path string) (Config, error) {
	v, err := newViper(path, true)
	if err != nil {
		return Config{}, err
	}
	return decode(v)
}

// SaveConfig writes cfg to the config file.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo is SaveConfig for an explicit file.
func SaveTo(path string, cfg Config) error {
	v := viper.New()
	v.Set("site.origin", cfg.Site.Origin)
	v.Set("site.web_relative_url", cfg.Site.WebRelativeURL)
	v.Set("site.template_id", cfg.Site.TemplateID)
	v.Set("site.client_tag", cfg.Site.ClientTag)
	v.Set("site.version", cfg.Site.Version)
	v.Set("site.central_admin_port", cfg.Site.CentralAdminPort)
	v.Set("launch.mode", cfg.Launch.Mode)
	v.Set("ui.visible_items", cfg.UI.VisibleItems)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.debug", cfg.Log.Debug)
	return write(v, path)
}

func write(v *viper.Viper, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	v.SetConfigType("json")
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	// The file may hold a tenant URL; keep it private to the owner.
	return os.Chmod(path, 0o600)
}

func checkKey(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := defaults[key]; !ok {
		return "", errors.Wrapf(ErrUnknownKey, "%q", key)
	}
	return key, nil
}

// Get returns the effective value of key, including environment overrides.
func Get(path, key string) (string, error) {
	key, err := checkKey(key)
	if err != nil {
		return "", err
	}
	v, err := newViper(path, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v.Get(key)), nil
}

// All returns every effective setting keyed by name.
func All(path string) (map[string]string, error) {
	v, err := newViper(path, true)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(defaults))
	for _, k := range Keys() {
		out[k] = fmt.Sprint(v.Get(k))
	}
	return out, nil
}

// Set stores value under key in the file at path. Environment overrides are not
// written back. The value must decode into the setting's type.
func Set(path, key, value string) error {
	key, err := checkKey(key)
	if err != nil {
		return err
	}
	v, err := newViper(path, false)
	if err != nil {
		return err
	}
	typed, err := parseValue(key, value)
	if err != nil {
		return err
	}
	v.Set(key, typed)
	cfg, err := decode(v)
	if err != nil {
		return errors.Wrapf(err, "invalid value %q for %s", value, key)
	}
	if err := validate(key, cfg); err != nil {
		return err
	}
	return write(v, path)
}

// parseValue converts value to the type of key's default.
func parseValue(key, value string) (any, error) {
	switch defaults[key].(type) {
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects a number", key)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects true or false", key)
		}
		return b, nil
	default:
		return value, nil
	}
}

// validate checks ranges that the types alone do not express, for the key being set.
func validate(key string, cfg Config) error {
	if key == "ui.visible_items" && cfg.UI.VisibleItems < palette.MinRows {
		return errors.Wrapf(ErrInvalidValue, "ui.visible_items must be at least %d", palette.MinRows)
	}
	return nil
}
