package gozipper

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LinesFromReader builds a cursor over the lines of r, focused on the first
// line. Absent for an empty stream. Line endings are stripped the way
// bufio.Scanner strips them.
func LinesFromReader(r io.Reader) (MaybeZipper[string], error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Absent[string](), fmt.Errorf("failed to scan lines: %w", err)
	}
	return FromSlice(lines), nil
}

// LinesFromFile is LinesFromReader over the named file.
func LinesFromFile(path string) (MaybeZipper[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return Absent[string](), fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := LinesFromReader(f)
	if err != nil {
		return Absent[string](), fmt.Errorf("failed to read %q: %w", path, err)
	}
	return m, nil
}
