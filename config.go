package empower

import (
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// TargetMethods names the methods to decorate, grouped by arity.
type TargetMethods struct {
	OneArg  []string // methods shaped func(value, message)
	TwoArgs []string // methods shaped func(actual, expected, message)
}

// Config controls one enhancement.
type Config struct {
	// Destructive installs decorated methods into the target object itself
	// instead of a clone. Not allowed for callable targets.
	Destructive bool

	// ModifyMessageOnFail replaces the message of a re-synthesized failure
	// with the diagnostic text.
	ModifyMessageOnFail bool

	// SaveContextOnFail attaches the captured Context to a re-synthesized failure.
	SaveContextOnFail bool

	TargetMethods TargetMethods

	// Logger receives debug records about enhancement and failure synthesis.
	Logger *slog.Logger
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Destructive:         false,
		ModifyMessageOnFail: false,
		SaveContextOnFail:   false,
		TargetMethods: TargetMethods{
			OneArg: []string{"ok"},
			TwoArgs: []string{
				"equal",
				"notEqual",
				"strictEqual",
				"notStrictEqual",
				"deepEqual",
				"notDeepEqual",
			},
		},
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Lazy reports whether diagnostic text is built only after an observed
// failure. When false, it is built before every call carrying context.
func (c Config) Lazy() bool {
	return c.ModifyMessageOnFail || c.SaveContextOnFail
}

// Settings returns the configuration as a map using the keys ResolveMap accepts.
func (c Config) Settings() map[string]any {
	return map[string]any{
		"destructive":         c.Destructive,
		"modifyMessageOnFail": c.ModifyMessageOnFail,
		"saveContextOnFail":   c.SaveContextOnFail,
		"targetMethods": map[string]any{
			"oneArg":  slices.Clone(c.TargetMethods.OneArg),
			"twoArgs": slices.Clone(c.TargetMethods.TwoArgs),
		},
	}
}

// Option overlays a single setting onto the defaults.
type Option func(*Config)

// Resolve applies opts over DefaultConfig.
func Resolve(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithConfig replaces the whole configuration, e.g. with one from ResolveMap or LoadConfig.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

func WithDestructive(destructive bool) Option {
	return func(cfg *Config) {
		cfg.Destructive = destructive
	}
}

func WithModifyMessageOnFail(modify bool) Option {
	return func(cfg *Config) {
		cfg.ModifyMessageOnFail = modify
	}
}

func WithSaveContextOnFail(save bool) Option {
	return func(cfg *Config) {
		cfg.SaveContextOnFail = save
	}
}

// WithOneArgMethods replaces the single-argument method names.
func WithOneArgMethods(names ...string) Option {
	return func(cfg *Config) {
		cfg.TargetMethods.OneArg = slices.Clone(names)
	}
}

// WithTwoArgsMethods replaces the two-argument method names.
func WithTwoArgsMethods(names ...string) Option {
	return func(cfg *Config) {
		cfg.TargetMethods.TwoArgs = slices.Clone(names)
	}
}

// WithoutOneArgMethods removes the default single-argument method names.
func WithoutOneArgMethods() Option {
	return func(cfg *Config) {
		cfg.TargetMethods.OneArg = nil
	}
}

// WithoutTwoArgsMethods removes the default two-argument method names.
func WithoutTwoArgsMethods() Option {
	return func(cfg *Config) {
		cfg.TargetMethods.TwoArgs = nil
	}
}

// WithoutTargetMethods removes all default method names. Only the callable
// itself (for function targets) is decorated.
func WithoutTargetMethods() Option {
	return func(cfg *Config) {
		cfg.TargetMethods = TargetMethods{}
	}
}

// WithLogger sets the logger. A nil logger discards.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

var settingKeys = []string{"destructive", "modifyMessageOnFail", "saveContextOnFail", "targetMethods"}

// ResolveMap overlays a generic settings map onto the defaults. Keys are
// matched case-insensitively. A key present with a nil value removes the
// default: booleans become false and method lists become empty.
//
// The map shape is the one produced by decoding YAML or by viper's
// AllSettings:
//
//	destructive: false
//	modifyMessageOnFail: true
//	targetMethods:
//	  oneArg: [ok, assert]
//	  twoArgs: ~
func ResolveMap(overrides map[string]any) (Config, error) {
	cfg := DefaultConfig()

	for key, value := range overrides {
		var err error
		switch strings.ToLower(key) {
		case "destructive":
			cfg.Destructive, err = boolSetting(key, value)
		case "modifymessageonfail":
			cfg.ModifyMessageOnFail, err = boolSetting(key, value)
		case "savecontextonfail":
			cfg.SaveContextOnFail, err = boolSetting(key, value)
		case "targetmethods":
			err = cfg.TargetMethods.overlay(value)
		default:
			err = errors.WithHintf(
				errors.Wrapf(ErrInvalidConfig, "unknown key %q", key),
				"valid keys are %s", strings.Join(settingKeys, ", "))
		}
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// LoadConfig decodes a YAML document and resolves it with ResolveMap.
// An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	var overrides map[string]any
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrap(err, "decode enhancement configuration")
	}
	return ResolveMap(overrides)
}

func (m *TargetMethods) overlay(value any) error {
	if value == nil {
		*m = TargetMethods{}
		return nil
	}

	nested, ok := value.(map[string]any)
	if !ok {
		return errors.Wrapf(ErrInvalidConfig, "targetMethods: expected a mapping, got %T", value)
	}

	for key, names := range nested {
		list, err := nameList(key, names)
		if err != nil {
			return err
		}
		switch strings.ToLower(key) {
		case "onearg":
			m.OneArg = list
		case "twoargs":
			m.TwoArgs = list
		default:
			return errors.WithHint(
				errors.Wrapf(ErrInvalidConfig, "unknown key %q in targetMethods", key),
				"valid keys are oneArg, twoArgs")
		}
	}
	return nil
}

func boolSetting(key string, value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		// Environment variables arrive as strings.
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, errors.Wrapf(ErrInvalidConfig, "%s: %q is not a boolean", key, v)
		}
		return b, nil
	default:
		return false, errors.Wrapf(ErrInvalidConfig, "%s: expected a boolean, got %T", key, value)
	}
}

// nameList accepts a YAML/viper list or a comma separated string.
func nameList(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return slices.Clone(v), nil
	case string:
		var names []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		return names, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidConfig, "targetMethods.%s: expected method names, got %T", key, item)
			}
			names = append(names, name)
		}
		return names, nil
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "targetMethods.%s: expected a list, got %T", key, value)
	}
}
