package shader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Stage identifies one shader compilation unit.
type Stage int

const (
	StageNone Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "none"
	}
}

// Source holds the two stage sources separated out of one artifact.
type Source struct {
	Vertex   string
	Fragment string
}

// ErrMalformedSource reports a source line that appears before the
// first #shader directive, so it belongs to no stage.
var ErrMalformedSource = errors.New("source line before any #shader directive")

// Split separates a combined shader artifact into its per-stage sources.
//
// A line containing the token "#shader" is a directive: it selects the
// stage ("vertex" or "fragment") the following lines accumulate into.
// Repeated directives for the same stage concatenate in file order, and
// a stage with no directive yields an empty string. Non-blank lines
// before the first directive fail with ErrMalformedSource; blank ones
// are discarded.
func Split(text string) (Source, error) {
	var vert, frag strings.Builder
	stage := StageNone

	sc := bufio.NewScanner(strings.NewReader(text))
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.Contains(line, "#shader") {
			switch {
			case strings.Contains(line, "vertex"):
				stage = StageVertex
			case strings.Contains(line, "fragment"):
				stage = StageFragment
			}
			continue
		}
		switch stage {
		case StageVertex:
			vert.WriteString(line)
			vert.WriteByte('\n')
		case StageFragment:
			frag.WriteString(line)
			frag.WriteByte('\n')
		default:
			if strings.TrimSpace(line) == "" {
				continue
			}
			return Source{}, fmt.Errorf("shader: line %d: %w", ln, ErrMalformedSource)
		}
	}
	if err := sc.Err(); err != nil {
		return Source{}, fmt.Errorf("shader: scan source: %w", err)
	}
	return Source{Vertex: vert.String(), Fragment: frag.String()}, nil
}

// SplitFile reads a shader artifact from disk and splits it. A missing
// artifact surfaces as a wrapped fs.ErrNotExist.
func SplitFile(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("shader: read artifact %q: %w", path, err)
	}
	return Split(string(b))
}
