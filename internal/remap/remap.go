// Package remap rewrites ANSI 16-color foreground escape sequences into the
// fixed truecolor sequences of the cyberdream theme. The rewrite is literal
// substring replacement; escape sequences are never parsed, and anything
// outside the 16-entry table passes through byte for byte.
package remap

import (
	"strings"

	"github.com/thesavant42/ansidream/internal/theme"
)

// Remapper applies the cyberdream rewrite table to text.
type Remapper struct {
	rules    []theme.Rule
	replacer *strings.Replacer
}

// New builds a Remapper from the theme table. Construct once and reuse; the
// table never changes after startup.
func New() *Remapper {
	rules := theme.Rules()
	pairs := make([]string, 0, len(rules)*2)
	for _, r := range rules {
		pairs = append(pairs, r.Src, r.Repl)
	}
	return &Remapper{
		rules:    rules,
		replacer: strings.NewReplacer(pairs...),
	}
}

// Remap replaces every occurrence of a mapped source sequence with its
// truecolor replacement. Pure function; identity on text containing no
// mapped sequences. The single-pass Replacer is equivalent to applying the
// rules one by one because no source pattern overlaps another and no
// replacement contains a source pattern.
func (m *Remapper) Remap(s string) string {
	return m.replacer.Replace(s)
}

// Count returns how many mapped source sequences occur in s. Used for
// logging only.
func (m *Remapper) Count(s string) int {
	n := 0
	for _, r := range m.rules {
		n += strings.Count(s, r.Src)
	}
	return n
}
