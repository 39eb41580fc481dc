// File: edgelist.go
// Role: plain-text edge-list parsing/writing and the output-path
// derivation main.cpp performs.

package odpio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/odp-anneal/odpsolve/graph"
)

// ReadEdgeList parses path as whitespace-separated "u v" integer pairs,
// one edge per line. Blank trailing lines are tolerated. Returns
// ErrMalformedLine (wrapping the offending line number and text) on any
// non-blank line that does not parse as exactly two non-negative
// integers.
func ReadEdgeList(path string) ([]graph.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("odpio: open %s: %w", path, err)
	}
	defer f.Close()

	var edges []graph.Edge
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, text)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil || u < 0 || v < 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, text)
		}
		edges = append(edges, graph.Edge{U: graph.Vertex(u), V: graph.Vertex(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("odpio: read %s: %w", path, err)
	}
	return edges, nil
}

// WriteEdgeList writes edges to path, one "u v" pair per line in E-order.
func WriteEdgeList(path string, edges []graph.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("odpio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("odpio: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

// derivedSuffix is appended to the derived output path.
const derivedSuffix = ".res.txt"

// DerivedOutputPath strips a 4-character extension from in (if the
// fourth-from-last rune is '.') and appends ".res.txt", matching
// main.cpp's output-path logic.
func DerivedOutputPath(in string) string {
	r := []rune(in)
	if len(r) >= 4 && r[len(r)-4] == '.' {
		in = string(r[:len(r)-4])
	}
	return in + derivedSuffix
}
