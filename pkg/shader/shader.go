// Package shader reads combined GLSL files in which "#shader vertex" and
// "#shader fragment" marker lines separate the two program stages.
package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const marker = "#shader"

var (
	// ErrNoShaderMarker is returned when source text appears before any
	// "#shader" marker line.
	ErrNoShaderMarker = errors.New("shader: source line before #shader marker")

	// ErrEmptyStage is returned by Validate when a stage has no source.
	ErrEmptyStage = errors.New("shader: empty shader stage")
)

// Stage identifies a program stage.
type Stage int

const (
	StageNone Stage = iota - 1
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

// Source holds the text of both stages, each line terminated by "\n".
type Source struct {
	Vertex   string
	Fragment string
}

// Parse splits r into vertex and fragment sources. A marker line naming
// neither stage leaves the current stage unchanged. Blank lines before the
// first marker are ignored.
func Parse(r io.Reader) (Source, error) {
	var sections [2]strings.Builder
	current := StageNone

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if strings.Contains(line, marker) {
			switch {
			case strings.Contains(line, "vertex"):
				current = StageVertex
			case strings.Contains(line, "fragment"):
				current = StageFragment
			}
			continue
		}

		if current == StageNone {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return Source{}, fmt.Errorf("%w: line %d", ErrNoShaderMarker, lineNo)
		}
		sections[current].WriteString(line)
		sections[current].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return Source{}, fmt.Errorf("read shader: %w", err)
	}

	return Source{
		Vertex:   sections[StageVertex].String(),
		Fragment: sections[StageFragment].String(),
	}, nil
}

// Load parses the shader file at path.
func Load(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// Validate requires both stages to contain non-blank source.
func (s Source) Validate() error {
	if strings.TrimSpace(s.Vertex) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyStage, StageVertex)
	}
	if strings.TrimSpace(s.Fragment) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyStage, StageFragment)
	}
	return nil
}
