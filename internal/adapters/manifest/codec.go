// Package manifest persists the project manifest as DCF, the record format
// the R toolchain reads and writes.
package manifest

import (
	"strings"

	"go.rpack.dev/rpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse decodes DCF content into a manifest. Field order and values the tool
// does not interpret are preserved; the separator after the colon is
// normalized to a single space on the next save.
func Parse(content []byte) (*domain.Manifest, error) {
	text := strings.TrimPrefix(string(content), "\uFEFF")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	m := &domain.Manifest{}
	current := -1
	for i, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			// DESCRIPTION is a single DCF record, so a blank line can only
			// appear after the last field.
			return nil, parseFailure(i+1, "blank line inside record")
		}
		if line[0] == ' ' || line[0] == '\t' {
			if current < 0 {
				return nil, parseFailure(i+1, "continuation line before any field")
			}
			m.Fields[current].Value += "\n" + line
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, parseFailure(i+1, "line is not a field")
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, parseFailure(i+1, "field has no name")
		}
		m.Fields = append(m.Fields, domain.Field{Key: key, Value: strings.TrimLeft(rest, " \t")})
		current = len(m.Fields) - 1
	}
	return m, nil
}

// Render encodes a manifest back to DCF. Values beginning with a newline are
// list valued fields whose entries already carry their own indentation.
func Render(m *domain.Manifest) []byte {
	var b strings.Builder
	for _, f := range m.Fields {
		b.WriteString(f.Key)
		b.WriteByte(':')
		if f.Value != "" && !strings.HasPrefix(f.Value, "\n") {
			b.WriteByte(' ')
		}
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func parseFailure(line int, msg string) error {
	return zerr.With(zerr.New(msg), "line", line)
}
