package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"leading and trailing", "  hello  ", "hello"},
		{"internal runs collapsed", "a  b\t\tc\n\nd", "a b c d"},
		{"control chars dropped", "he\x00llo\x07", "hello"},
		{"unicode preserved", "  тренировка  дома ", "тренировка дома"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeFreeText_CapsLength(t *testing.T) {
	got := NormalizeFreeText("abcdefghij", 4)
	if got != "abcd" {
		t.Errorf("expected capped text 'abcd', got %q", got)
	}

	// A zero cap means unlimited.
	got = NormalizeFreeText("abcdefghij", 0)
	if got != "abcdefghij" {
		t.Errorf("expected uncapped text, got %q", got)
	}
}

func TestNormalizeEquipmentList(t *testing.T) {
	input := []string{" Dumbbells ", "BARBELL", "dumbbells", "", "  "}
	expected := []string{"dumbbells", "barbell"}

	got := NormalizeEquipmentList(input)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("NormalizeEquipmentList(%v) = %v, want %v", input, got, expected)
	}
}
