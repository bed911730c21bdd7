package config

import (
	"errors"
	"testing"
)

func TestField_NumericConfigLocale(t *testing.T) {
	tests := []struct {
		name          string
		field         Field
		wantThousands rune
		wantDecimal   rune
	}{
		{
			name:          "defaults",
			field:         Field{Kind: KindNumeric, DecimalDigits: 2, GroupSize: 3},
			wantThousands: ',',
			wantDecimal:   '.',
		},
		{
			name:          "german locale",
			field:         Field{Kind: KindNumeric, DecimalDigits: 2, GroupSize: 3, Locale: "de-DE"},
			wantThousands: '.',
			wantDecimal:   ',',
		},
		{
			name:          "explicit separator wins",
			field:         Field{Kind: KindNumeric, DecimalDigits: 2, GroupSize: 3, Locale: "de-DE", ThousandsSeparator: '\''},
			wantThousands: '\'',
			wantDecimal:   ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.field.NumericConfig()
			if err != nil {
				t.Fatalf("NumericConfig: %v", err)
			}
			if cfg.ThousandsSeparator != tt.wantThousands {
				t.Errorf("ThousandsSeparator = %q, want %q", cfg.ThousandsSeparator, tt.wantThousands)
			}
			if cfg.DecimalSeparator != tt.wantDecimal {
				t.Errorf("DecimalSeparator = %q, want %q", cfg.DecimalSeparator, tt.wantDecimal)
			}
		})
	}
}

func TestField_NumericConfigBadLocale(t *testing.T) {
	f := Field{Name: "x", Kind: KindNumeric, GroupSize: 3, Locale: "not a locale"}
	if _, err := f.Transformer(); err == nil {
		t.Error("expected error for malformed locale")
	}
}

func TestField_TransformerUnknownKind(t *testing.T) {
	f := Field{Name: "x", Kind: "roman"}
	_, err := f.Transformer()
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Transformer error = %v, want ErrUnknownKind", err)
	}
}

func TestField_NewSessionMask(t *testing.T) {
	f := Field{Name: "date", Kind: KindMask, Mask: "##/##/####", Accept: "digits"}

	s, err := f.NewSession("")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// Letters are filtered and input stops at the slot count.
	if n := s.Insert("12a25202499"); n != 8 {
		t.Errorf("Insert accepted %d runes, want 8", n)
	}
	if s.Value() != "12252024" {
		t.Errorf("Value() = %q, want 12252024", s.Value())
	}
	if v := s.View(); v.Text != "12/25/2024" || v.Cursor != 10 {
		t.Errorf("View() = %+v", v)
	}
}

func TestField_NewSessionValue(t *testing.T) {
	f := Field{Name: "amount", Kind: KindNumeric, DecimalDigits: 2, GroupSize: 3, Accept: "digits", MaxLength: 4}

	s, err := f.NewSession("123456")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Value() != "1234" {
		t.Errorf("Value() = %q, want value truncated to max length", s.Value())
	}
	if got := s.View().Text; got != "12.34" {
		t.Errorf("View().Text = %q, want 12.34", got)
	}
}

func TestField_SessionOptionsUnknownAccept(t *testing.T) {
	f := Field{Name: "x", Kind: KindMask, Mask: "##", Accept: "hex"}
	if _, err := f.SessionOptions(); !errors.Is(err, ErrUnknownAccept) {
		t.Errorf("SessionOptions error = %v, want ErrUnknownAccept", err)
	}
}

func TestField_InputLimit(t *testing.T) {
	tests := []struct {
		field Field
		want  int
	}{
		{Field{Kind: KindMask, Mask: "(###) ###-####"}, 10},
		{Field{Kind: KindMask, Mask: "XX-XX", SlotSignal: 'X'}, 4},
		{Field{Kind: KindMask, Mask: "####", MaxLength: 2}, 2},
		{Field{Kind: KindNumeric}, 0},
	}
	for _, tt := range tests {
		if got := tt.field.InputLimit(); got != tt.want {
			t.Errorf("InputLimit(%+v) = %d, want %d", tt.field, got, tt.want)
		}
	}
}
