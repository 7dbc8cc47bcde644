package gridtext

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/vec2"
)

// ErrParse is the sentinel wrapped by every parse failure. Callers that
// only care about "was this malformed" should use errors.Is(err, ErrParse).
var ErrParse = errors.New("gridtext: malformed puzzle text")

// Parse reads a puzzle in the line-oriented text format described in the
// package doc and returns the resulting grid.Grid.
func Parse(raw string) (*grid.Grid, error) {
	lines, err := significantLines(raw)
	if err != nil {
		return nil, err
	}
	if len(lines) < 1 {
		return nil, fmt.Errorf("%w: missing size line", ErrParse)
	}

	side, err := parseSize(lines[0])
	if err != nil {
		return nil, err
	}
	if len(lines) != side+1 {
		return nil, fmt.Errorf("%w: expected %d row lines, got %d", ErrParse, side, len(lines)-1)
	}

	tiles := make([]int, 0, side*side)
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != side {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrParse, i, len(fields), side)
		}
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q is not an integer", ErrParse, i, tok)
			}
			tiles = append(tiles, v)
		}
	}

	g, err := grid.New(tiles, side)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	return g, nil
}

// significantLines trims each line, strips trailing '#' comments, and drops
// any line that is blank after that processing.
func significantLines(raw string) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	return out, nil
}

func parseSize(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: size line must hold a single integer, got %q", ErrParse, line)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: size %q is not an integer", ErrParse, fields[0])
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: size must be positive, got %d", ErrParse, n)
	}

	return n, nil
}

// Render writes g back out in the same text format Parse accepts, one row
// per line of whitespace-separated decimal values preceded by the size
// line. Used by the round-trip tests.
func Render(g *grid.Grid) string {
	side := g.Side()
	var b strings.Builder
	fmt.Fprintln(&b, side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", g.Get(vec2.New(x, y)))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
