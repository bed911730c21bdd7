package numeric

// Default configuration values.
const (
	DefaultDecimalDigits      = 2
	DefaultGroupSize          = 3
	DefaultThousandsSeparator = ','
	DefaultDecimalSeparator   = '.'
)

// Config holds the formatting parameters of a Transformer.
type Config struct {
	// DecimalDigits is the number of trailing raw digits shown after the
	// decimal separator.
	DecimalDigits int

	// GroupSize is the number of integer digits between thousands
	// separators.
	GroupSize int

	ThousandsSeparator rune
	DecimalSeparator   rune

	// ShowZeroValue formats empty input as zero ("0.00") instead of
	// leaving the field empty.
	ShowZeroValue bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		DecimalDigits:      DefaultDecimalDigits,
		GroupSize:          DefaultGroupSize,
		ThousandsSeparator: DefaultThousandsSeparator,
		DecimalSeparator:   DefaultDecimalSeparator,
	}
}

// Option configures a Transformer during creation.
type Option func(*Config)

// WithDecimalDigits sets the number of fractional digits.
// Negative values are rejected by New.
func WithDecimalDigits(n int) Option {
	return func(c *Config) {
		c.DecimalDigits = n
	}
}

// WithGroupSize sets the digit grouping interval.
func WithGroupSize(n int) Option {
	return func(c *Config) {
		c.GroupSize = n
	}
}

// WithThousandsSeparator sets the grouping separator.
func WithThousandsSeparator(r rune) Option {
	return func(c *Config) {
		c.ThousandsSeparator = r
	}
}

// WithDecimalSeparator sets the separator between integer and fraction.
func WithDecimalSeparator(r rune) Option {
	return func(c *Config) {
		c.DecimalSeparator = r
	}
}

// WithShowZeroValue controls whether empty input is formatted as zero.
func WithShowZeroValue(show bool) Option {
	return func(c *Config) {
		c.ShowZeroValue = show
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
