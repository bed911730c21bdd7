package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dshills/fieldmask/internal/config/loader"
	"github.com/dshills/fieldmask/internal/visual/numeric"
)

// Config is a decoded preset file.
type Config struct {
	// Path is the file the config was loaded from, empty for built-ins.
	Path string

	Logging LoggingConfig
	Watch   WatchConfig

	fields map[string]Field
}

// LoggingConfig is the [logging] section.
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// WatchConfig is the [watch] section.
type WatchConfig struct {
	// Debounce coalesces bursts of file events into one reload.
	Debounce time.Duration
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs           loader.FileSystem
	env          *loader.EnvLoader
	builtins     bool
	includeDepth int
}

// WithFS reads preset files through fsys instead of the OS.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment loader. A nil loader disables
// environment overrides.
func WithEnv(env *loader.EnvLoader) LoadOption {
	return func(o *loadOptions) {
		o.env = env
	}
}

// WithoutBuiltins starts from an empty preset set.
func WithoutBuiltins() LoadOption {
	return func(o *loadOptions) {
		o.builtins = false
	}
}

// WithIncludeDepth limits nested "@include" directives in TOML files.
func WithIncludeDepth(n int) LoadOption {
	return func(o *loadOptions) {
		o.includeDepth = n
	}
}

// Load builds a Config from the built-in presets, the file at path and
// the environment, in increasing priority. An empty path loads only
// built-ins and environment. A named file that does not exist is an
// error wrapping ErrFileNotFound.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:           loader.DefaultFS(),
		env:          loader.NewEnvLoader(loader.DefaultEnvPrefix),
		builtins:     true,
		includeDepth: DefaultIncludeDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}

	data := make(map[string]any)
	if o.builtins {
		data = builtinData()
	}

	if path != "" {
		fileData, err := loadFile(o, path)
		if err != nil {
			return nil, err
		}
		data = loader.DeepMerge(data, fileData)
	}

	if o.env != nil {
		envData, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		data = loader.DeepMerge(data, envData)
	}

	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

func loadFile(o loadOptions, path string) (map[string]any, error) {
	if _, err := o.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	l, err := loader.ForPath(o.fs, path)
	if err != nil {
		return nil, err
	}
	if tl, ok := l.(*loader.TOMLLoader); ok {
		return tl.LoadWithIncludes(path, o.includeDepth)
	}
	return l.LoadFrom(path)
}

// Decode converts a merged loader map into a Config and checks that
// every preset builds.
func Decode(data map[string]any) (*Config, error) {
	d := &decoder{data: data}

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  d.string("logging.level", DefaultLogLevel),
			Format: d.string("logging.format", DefaultLogFormat),
			Output: d.string("logging.output", DefaultLogOutput),
		},
		Watch: WatchConfig{
			Debounce: d.duration("watch.debounce", DefaultDebounce),
		},
		fields: make(map[string]Field),
	}

	if raw, ok := d.lookup("fields"); ok {
		presets, ok := raw.(map[string]any)
		if !ok {
			return nil, &TypeError{Path: "fields", Expected: "map", Actual: typeName(raw)}
		}
		for name := range presets {
			cfg.fields[name] = d.field(name)
		}
	}

	if d.err != nil {
		return nil, d.err
	}

	for _, name := range cfg.Names() {
		if err := cfg.fields[name].Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Field returns the named preset.
func (c *Config) Field(name string) (Field, error) {
	f, ok := c.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// Names returns the preset names in sorted order.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.fields))
}

// decoder reads typed values out of a loader map. The first failure is
// kept and later reads return their defaults.
type decoder struct {
	data map[string]any
	err  error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) lookup(path string) (any, bool) {
	return loader.GetByPath(d.data, path)
}

func (d *decoder) field(name string) Field {
	p := "fields." + name + "."
	defaults := numeric.DefaultConfig()

	return Field{
		Name:               name,
		Kind:               Kind(d.string(p+"kind", string(KindMask))),
		Label:              d.string(p+"label", name),
		Placeholder:        d.string(p+"placeholder", ""),
		Mask:               d.string(p+"mask", ""),
		SlotSignal:         d.rune(p+"slotSignal", 0),
		DecimalDigits:      d.int(p+"decimalDigits", defaults.DecimalDigits),
		GroupSize:          d.int(p+"groupSize", defaults.GroupSize),
		ThousandsSeparator: d.rune(p+"thousandsSeparator", 0),
		DecimalSeparator:   d.rune(p+"decimalSeparator", 0),
		ShowZeroValue:      d.bool(p+"showZeroValue", false),
		Locale:             d.string(p+"locale", ""),
		MaxLength:          d.int(p+"maxLength", 0),
		Accept:             d.string(p+"accept", ""),
	}
}

func (d *decoder) string(path, def string) string {
	v, ok := d.lookup(path)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case string:
		return val
	case int64:
		// Environment values that look numeric arrive as integers.
		return strconv.FormatInt(val, 10)
	default:
		d.fail(&TypeError{Path: path, Expected: "string", Actual: typeName(v)})
		return def
	}
}

func (d *decoder) int(path string, def int) int {
	v, ok := d.lookup(path)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == math.Trunc(val) {
			return int(val)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	d.fail(&TypeError{Path: path, Expected: "int", Actual: typeName(v)})
	return def
}

func (d *decoder) bool(path string, def bool) bool {
	v, ok := d.lookup(path)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	d.fail(&TypeError{Path: path, Expected: "bool", Actual: typeName(v)})
	return def
}

// rune reads a single-character string. An empty string means unset.
func (d *decoder) rune(path string, def rune) rune {
	v, ok := d.lookup(path)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		d.fail(&TypeError{Path: path, Expected: "character", Actual: typeName(v)})
		return def
	}
	switch utf8.RuneCountInString(s) {
	case 0:
		return def
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r
	default:
		d.fail(&TypeError{Path: path, Expected: "character", Actual: fmt.Sprintf("string of %d characters", utf8.RuneCountInString(s))})
		return def
	}
}

// duration accepts a time.Duration, a string like "250ms" or an integer
// number of milliseconds.
func (d *decoder) duration(path string, def time.Duration) time.Duration {
	v, ok := d.lookup(path)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case time.Duration:
		return val
	case int64:
		return time.Duration(val) * time.Millisecond
	case string:
		if dur, err := time.ParseDuration(val); err == nil {
			return dur
		}
		if n, err := strconv.Atoi(val); err == nil {
			return time.Duration(n) * time.Millisecond
		}
	}
	d.fail(&TypeError{Path: path, Expected: "duration", Actual: typeName(v)})
	return def
}
