package loader

import (
	"testing"
	"time"
)

func envLoader(vars ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.environ = func() []string { return vars }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	loader := envLoader(
		"FIELDMASK_LOG_LEVEL=debug",
		"FIELDMASK_FIELDS_AMOUNT_DECIMAL_DIGITS=3",
		"FIELDMASK_FIELDS_AMOUNT_THOUSANDS_SEPARATOR=.",
		"FIELDMASK_FIELDS_DATE_MASK=##.##.####",
		"FIELDMASK_FIELDS_DATE_MAX_LENGTH=10",
		"FIELDMASK_WATCH_DEBOUNCE=250ms",
		"FIELDMASK_FIELDS_AMOUNT_SHOW_ZERO_VALUE=yes",
		"OTHER_VAR=ignored",
	)

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"logging.level", "debug"},
		{"fields.amount.decimalDigits", "3"},
		{"fields.amount.thousandsSeparator", "."},
		{"fields.date.mask", "##.##.####"},
		{"fields.date.maxLength", int64(10)},
		{"watch.debounce", 250 * time.Millisecond},
		{"fields.amount.showZeroValue", true},
	}

	for _, tt := range tests {
		val, ok := GetByPath(config, tt.path)
		if !ok || val != tt.want {
			t.Errorf("%s = %v (%T), want %v (%T)", tt.path, val, val, tt.want, tt.want)
		}
	}

	if _, ok := config["other"]; ok {
		t.Error("unprefixed variables should be ignored")
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := envLoader("FIELDMASK_DEFAULT=amount")
	loader.AddMapping("FIELDMASK_DEFAULT", "defaultField")

	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	if config["defaultField"] != "amount" {
		t.Errorf("defaultField = %v, want amount", config["defaultField"])
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"FIELDMASK_WATCH_DEBOUNCE", "watch.debounce"},
		{"FIELDMASK_LOGGING_LEVEL", "logging.level"},
		{"FIELDMASK_FIELDS_DATE_MASK", "fields.date.mask"},
		{"FIELDMASK_FIELDS_DATE_SLOT_SIGNAL", "fields.date.slotSignal"},
		{"FIELDMASK_FIELDS_DATE", ""},
		{"FIELDMASK_VERBOSE", "verbose"},
	}

	for _, tt := range tests {
		if got := loader.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{",", ","},
		{"0", "0"},
		{"true", true},
		{"OFF", false},
		{"42", int64(42)},
		{"1s", time.Second},
		{"de-DE", "de-DE"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
