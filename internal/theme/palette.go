package theme

import (
	"fmt"
	"strings"
)

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#rrggbb" hex color string.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want #rrggbb", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the "#rrggbb" form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Truecolor returns the SGR sequence that selects this color as a 24-bit
// foreground, bypassing the terminal's 16-color palette.
func (c RGB) Truecolor() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// mustHex backs the palette vars below; the values are fixed at authoring
// time and known to parse.
func mustHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Cyberdream palette, from the Ghostty cyberdream theme. The bright row
// reuses the standard colors except for bright black.
var (
	Black   = mustHex("#16181a")
	Red     = mustHex("#ff6e5e")
	Green   = mustHex("#5eff6c")
	Yellow  = mustHex("#f1ff5e")
	Blue    = mustHex("#5ea1ff")
	Magenta = mustHex("#bd5eff")
	Cyan    = mustHex("#5ef1ff")
	White   = mustHex("#ffffff")

	BrightBlack   = mustHex("#3c4048")
	BrightRed     = Red
	BrightGreen   = Green
	BrightYellow  = Yellow
	BrightBlue    = Blue
	BrightMagenta = Magenta
	BrightCyan    = Cyan
	BrightWhite   = White
)

// Rule rewrites one literal SGR sequence into its truecolor form.
type Rule struct {
	Src  string
	Repl string
}

// Foreground SGR codes 30-37 and 90-97 paired with their cyberdream colors,
// in table order. Codes outside this table (reset, bold, backgrounds, 256-color
// forms) are deliberately absent and pass through untouched.
var sgrForeground = [16]struct {
	code  int
	color RGB
}{
	{30, Black},
	{31, Red},
	{32, Green},
	{33, Yellow},
	{34, Blue},
	{35, Magenta},
	{36, Cyan},
	{37, White},
	{90, BrightBlack},
	{91, BrightRed},
	{92, BrightGreen},
	{93, BrightYellow},
	{94, BrightBlue},
	{95, BrightMagenta},
	{96, BrightCyan},
	{97, BrightWhite},
}

// Rules returns the ordered rewrite table. No source sequence is a substring
// of another and no replacement contains a source sequence, so replacement
// order never affects the result.
func Rules() []Rule {
	rules := make([]Rule, 0, len(sgrForeground))
	for _, e := range sgrForeground {
		rules = append(rules, Rule{
			Src:  fmt.Sprintf("\x1b[%dm", e.code),
			Repl: e.color.Truecolor(),
		})
	}
	return rules
}
