package remap

import (
	"fmt"
	"os"

	"github.com/thesavant42/ansidream/internal/textenc"
)

// Stats summarizes one file transform.
type Stats struct {
	BytesIn      int
	BytesOut     int
	Replacements int
}

// TransformFile reads inputPath whole, lossily decodes it with enc, remaps
// the text, re-encodes and writes the result to outputPath in a single write.
// On a read error the output file is never touched.
func (m *Remapper) TransformFile(inputPath, outputPath string, enc textenc.Encoding) (Stats, error) {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("read input: %w", err)
	}

	content := enc.Decode(raw)
	out := enc.Encode(m.Remap(content))

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return Stats{}, fmt.Errorf("write output: %w", err)
	}

	return Stats{
		BytesIn:      len(raw),
		BytesOut:     len(out),
		Replacements: m.Count(content),
	}, nil
}
