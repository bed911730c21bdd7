package field

import "unicode"

// Option configures a Session during creation.
type Option func(*Session)

// WithMaxLength caps the raw value at n runes. Zero means unlimited.
func WithMaxLength(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxLen = n
		}
	}
}

// WithAccept sets the filter applied to every inserted rune.
func WithAccept(accept func(rune) bool) Option {
	return func(s *Session) {
		s.accept = accept
	}
}

// WithValue sets the initial raw value. The value is filtered like
// typed input and the cursor is placed at its end.
func WithValue(raw string) Option {
	return func(s *Session) {
		s.initValue = raw
	}
}

// AcceptAny accepts every rune except control characters.
func AcceptAny(r rune) bool {
	return !unicode.IsControl(r)
}

// AcceptDigits accepts decimal digits.
func AcceptDigits(r rune) bool {
	return unicode.IsDigit(r)
}

// AcceptLetters accepts letters.
func AcceptLetters(r rune) bool {
	return unicode.IsLetter(r)
}

// AcceptAlphanumeric accepts letters and digits.
func AcceptAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// AcceptFunc returns the named filter: "any", "digits", "letters" or
// "alnum". The second result is false for unknown names.
func AcceptFunc(name string) (func(rune) bool, bool) {
	switch name {
	case "", "any":
		return AcceptAny, true
	case "digits":
		return AcceptDigits, true
	case "letters":
		return AcceptLetters, true
	case "alnum":
		return AcceptAlphanumeric, true
	default:
		return nil, false
	}
}
