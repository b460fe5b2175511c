package fecparse

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Reader streams pipe-delimited rows from a bulk file without ever holding
// the whole file in memory. Individual-contribution files run to multiple
// gigabytes.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// Open opens a bulk file for streaming, decoding from the publisher's
// legacy single-byte encoding.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bulk file: %w", err)
	}

	decoded, err := charset.NewReaderLabel("windows-1252", f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	return &Reader{file: f, scanner: scanner}, nil
}

// Next returns the fields of the next row. ok is false at end of input.
func (r *Reader) Next() (fields []string, ok bool) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if line == "" {
			continue
		}
		return strings.Split(line, "|"), true
	}
	return nil, false
}

// Line returns the 1-based number of the last row returned by Next
func (r *Reader) Line() int {
	return r.line
}

// Err returns the first non-EOF error seen while scanning
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Close releases the underlying file
func (r *Reader) Close() error {
	return r.file.Close()
}
