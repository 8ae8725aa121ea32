// Package textenc converts file bytes to and from text without ever failing
// on malformed input: bytes that are invalid for the selected encoding become
// U+FFFD instead of errors.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects how file bytes are converted to and from text.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

var (
	// UTF8 is the default and decodes leniently.
	UTF8 = Encoding{name: "utf-8", enc: unicode.UTF8}
	// CP437 covers classic ANSI art files.
	CP437 = Encoding{name: "cp437", enc: charmap.CodePage437}
)

// Parse resolves an encoding by name, case-insensitively.
func Parse(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "cp437", "ibm437", "437":
		return CP437, nil
	}
	return Encoding{}, fmt.Errorf("unsupported encoding %q (supported: utf-8, cp437)", name)
}

func (e Encoding) String() string { return e.name }

// Decode converts raw file bytes to text. Byte sequences invalid for the
// encoding are replaced with U+FFFD rather than reported.
func (e Encoding) Decode(b []byte) string {
	out, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		// x/text decoders substitute instead of failing; keep the raw
		// bytes if one ever does.
		return string(b)
	}
	return string(out)
}

// Encode converts text back to file bytes. Runes the target encoding cannot
// represent are substituted, which is only possible for cp437.
func (e Encoding) Encode(s string) []byte {
	enc := encoding.ReplaceUnsupported(e.enc.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
