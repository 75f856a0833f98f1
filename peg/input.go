package peg

import (
	"sort"

	"github.com/joshuapare/pegkit/internal/mmfile"
	"github.com/joshuapare/pegkit/internal/textenc"
	"github.com/joshuapare/pegkit/pkg/types"
)

// Input is a named, decoded source text with line-offset indexing for
// position reporting. Columns are 1-based byte columns.
type Input struct {
	name  string
	src   string
	lines []int // byte offset of each line start
}

// NewInput wraps an already-decoded source string.
func NewInput(name, src string) *Input {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Input{name: name, src: src, lines: lines}
}

// NewInputBytes decodes raw bytes per the declared encoding (see
// internal/textenc: BOMs are honored, enc may name UTF-8, UTF-16, or a
// single-byte code page) and wraps the result.
func NewInputBytes(name string, data []byte, enc string) (*Input, error) {
	src, err := textenc.Decode(data, enc)
	if err != nil {
		return nil, err
	}
	return NewInput(name, src), nil
}

// LoadInput memory-maps the file at path, decodes it per enc, and
// returns the input. The mapping is released before returning; the
// decoded text is independent of the file.
func LoadInput(path, enc string) (*Input, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return NewInputBytes(path, data, enc)
}

// Name returns the input's name (typically a file path).
func (in *Input) Name() string { return in.name }

// Source returns the decoded source text.
func (in *Input) Source() string { return in.src }

// Len returns the source length in bytes.
func (in *Input) Len() int { return len(in.src) }

// Pos expands a byte offset into a full position with line and column.
func (in *Input) Pos(offset int) types.Pos {
	line := sort.SearchInts(in.lines, offset+1) - 1
	return types.Pos{
		Offset: offset,
		Line:   line + 1,
		Column: offset - in.lines[line] + 1,
	}
}

// Text returns the substring of the source covered by span.
func (in *Input) Text(span types.Span) string { return span.Text(in.src) }
