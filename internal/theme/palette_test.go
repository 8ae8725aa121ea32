package theme

import (
	"strings"
	"testing"
)

// TestRulesTable verifies every SGR code maps to the cyberdream truecolor
// sequence with the expected RGB values baked in.
func TestRulesTable(t *testing.T) {
	want := map[string]string{
		"\x1b[30m": "\x1b[38;2;22;24;26m",
		"\x1b[31m": "\x1b[38;2;255;110;94m",
		"\x1b[32m": "\x1b[38;2;94;255;108m",
		"\x1b[33m": "\x1b[38;2;241;255;94m",
		"\x1b[34m": "\x1b[38;2;94;161;255m",
		"\x1b[35m": "\x1b[38;2;189;94;255m",
		"\x1b[36m": "\x1b[38;2;94;241;255m",
		"\x1b[37m": "\x1b[38;2;255;255;255m",
		"\x1b[90m": "\x1b[38;2;60;64;72m",
		"\x1b[91m": "\x1b[38;2;255;110;94m",
		"\x1b[92m": "\x1b[38;2;94;255;108m",
		"\x1b[93m": "\x1b[38;2;241;255;94m",
		"\x1b[94m": "\x1b[38;2;94;161;255m",
		"\x1b[95m": "\x1b[38;2;189;94;255m",
		"\x1b[96m": "\x1b[38;2;94;241;255m",
		"\x1b[97m": "\x1b[38;2;255;255;255m",
	}

	rules := Rules()
	if len(rules) != 16 {
		t.Fatalf("Rules() returned %d entries, want 16", len(rules))
	}

	seen := map[string]bool{}
	for _, r := range rules {
		if seen[r.Src] {
			t.Errorf("duplicate source pattern %q", r.Src)
		}
		seen[r.Src] = true

		repl, ok := want[r.Src]
		if !ok {
			t.Errorf("unexpected source pattern %q", r.Src)
			continue
		}
		if r.Repl != repl {
			t.Errorf("Rules()[%q] = %q, want %q", r.Src, r.Repl, repl)
		}
	}
}

// TestRulesOrder verifies standard codes come before bright codes, each
// block ascending.
func TestRulesOrder(t *testing.T) {
	rules := Rules()
	wantOrder := []string{
		"\x1b[30m", "\x1b[31m", "\x1b[32m", "\x1b[33m",
		"\x1b[34m", "\x1b[35m", "\x1b[36m", "\x1b[37m",
		"\x1b[90m", "\x1b[91m", "\x1b[92m", "\x1b[93m",
		"\x1b[94m", "\x1b[95m", "\x1b[96m", "\x1b[97m",
	}
	for i, src := range wantOrder {
		if rules[i].Src != src {
			t.Errorf("Rules()[%d].Src = %q, want %q", i, rules[i].Src, src)
		}
	}
}

// TestRulesNonOverlapping pins the invariant that makes single-pass
// replacement equivalent to sequential replacement: no source is a substring
// of another source, and no replacement contains any source.
func TestRulesNonOverlapping(t *testing.T) {
	rules := Rules()
	for i, a := range rules {
		for j, b := range rules {
			if i != j && strings.Contains(a.Src, b.Src) {
				t.Errorf("source %q contains source %q", a.Src, b.Src)
			}
			if strings.Contains(a.Repl, b.Src) {
				t.Errorf("replacement %q contains source %q", a.Repl, b.Src)
			}
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{"#ff6e5e", RGB{255, 110, 94}, false},
		{"16181a", RGB{22, 24, 26}, false},
		{"#FFFFFF", RGB{255, 255, 255}, false},
		{"#fff", RGB{}, true},
		{"", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestPalette pins the parsed palette values against their raw RGB forms.
func TestPalette(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  RGB
	}{
		{"Black", Black, RGB{22, 24, 26}},
		{"Red", Red, RGB{255, 110, 94}},
		{"Green", Green, RGB{94, 255, 108}},
		{"Yellow", Yellow, RGB{241, 255, 94}},
		{"Blue", Blue, RGB{94, 161, 255}},
		{"Magenta", Magenta, RGB{189, 94, 255}},
		{"Cyan", Cyan, RGB{94, 241, 255}},
		{"White", White, RGB{255, 255, 255}},
		{"BrightBlack", BrightBlack, RGB{60, 64, 72}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.color != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.color, tt.want)
			}
		})
	}
}

func TestTruecolor(t *testing.T) {
	if got := Red.Truecolor(); got != "\x1b[38;2;255;110;94m" {
		t.Errorf("Red.Truecolor() = %q", got)
	}
	if got := BrightBlack.Hex(); got != "#3c4048" {
		t.Errorf("BrightBlack.Hex() = %q", got)
	}
}
