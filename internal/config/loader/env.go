package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvPrefix is the prefix of every fieldmask environment variable.
const DefaultEnvPrefix = "FIELDMASK_"

// EnvLoader loads configuration from environment variables.
//
// Variables listed in the mapping are placed at their mapped path. Other
// prefixed variables are converted by name:
//
//	FIELDMASK_WATCH_DEBOUNCE                -> watch.debounce
//	FIELDMASK_FIELDS_AMOUNT_DECIMAL_DIGITS  -> fields.amount.decimalDigits
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "FIELDMASK_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "FIELDMASK_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		environ: os.Environ,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":  "logging.level",
		prefix + "LOG_FORMAT": "logging.format",
		prefix + "LOG_OUTPUT": "logging.output",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// WithEnviron replaces the environment source, which defaults to
// os.Environ.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	l.environ = environ
	return l
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts FIELDMASK_WATCH_DEBOUNCE to watch.debounce and
// FIELDMASK_FIELDS_DATE_MAX_LENGTH to fields.date.maxLength.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(strings.ToLower(name), "_")

	result := make([]string, 0, 3)
	result = append(result, parts[0])
	parts = parts[1:]

	// Field presets are one level deeper: fields.<name>.<setting>.
	if result[0] == "fields" {
		if len(parts) < 2 {
			return ""
		}
		result = append(result, parts[0])
		parts = parts[1:]
	}

	if len(parts) > 0 {
		result = append(result, camelCase(parts))
	}

	return strings.Join(result, ".")
}

// camelCase joins lower-case words as lowerCamelCase.
func camelCase(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return b.String()
}

// parseValue attempts to parse the string value into an appropriate type.
// Single characters stay strings so separators like "," or "0" survive.
func parseValue(s string) any {
	if len(s) <= 1 {
		return s
	}

	lower := strings.ToLower(s)
	switch lower {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}

// GetByPath reads a value from a nested map using a dot-separated path.
func GetByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := data

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}
