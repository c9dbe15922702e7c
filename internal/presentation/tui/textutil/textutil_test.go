package textutil

import "testing"

func TestSingleLine(t *testing.T) {
	if got := SingleLine("  a\n b\t c "); got != "a b c" {
		t.Errorf("SingleLine() = %q", got)
	}
	if got := SingleLine(""); got != "" {
		t.Errorf("SingleLine(empty) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"Subset A", 20, "Subset A"},
		{"Subconjunto 12345", 8, "Subconj…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.text, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight() = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight() should not cut, got %q", got)
	}
	if got := PadRight("mín", 5); got != "mín  " {
		t.Errorf("PadRight() should count display width, got %q", got)
	}
}
