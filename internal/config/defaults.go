package config

import "time"

// Defaults used when a setting is absent.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultLogOutput    = "stderr"
	DefaultDebounce     = 100 * time.Millisecond
	DefaultIncludeDepth = 5
)

// builtinData returns the built-in presets in loader map form so files
// and environment variables merge over them like any other layer.
func builtinData() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level":  DefaultLogLevel,
			"format": DefaultLogFormat,
			"output": DefaultLogOutput,
		},
		"watch": map[string]any{
			"debounce": DefaultDebounce,
		},
		"fields": map[string]any{
			"date": map[string]any{
				"kind":        string(KindMask),
				"mask":        "##/##/####",
				"accept":      "digits",
				"label":       "Date",
				"placeholder": "MM/DD/YYYY",
			},
			"phone": map[string]any{
				"kind":        string(KindMask),
				"mask":        "(###) ###-####",
				"accept":      "digits",
				"label":       "Phone",
				"placeholder": "(555) 555-0100",
			},
			"card": map[string]any{
				"kind":        string(KindMask),
				"mask":        "#### #### #### ####",
				"accept":      "digits",
				"label":       "Card number",
				"placeholder": "0000 0000 0000 0000",
			},
			"amount": map[string]any{
				"kind":          string(KindNumeric),
				"accept":        "digits",
				"label":         "Amount",
				"placeholder":   "0.00",
				"decimalDigits": int64(2),
				"maxLength":     int64(15),
			},
		},
	}
}
