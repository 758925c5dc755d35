// Package jsonl stores the history of generated themes as JSON lines.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/theme"
)

// Compile-time interface verification.
var _ theme.GenerationLog = (*Log)(nil)

// Log is an append-only file of Generation records, one JSON object per line.
type Log struct {
	path string
}

// NewLog returns a log backed by the file at path. The file is created on
// the first Append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// maxLineSize is the maximum size for a single JSONL line (1MB).
const maxLineSize = 1024 * 1024

// Load reads every record in the log, oldest first. A log that does not
// exist yet is empty.
func (l *Log) Load() ([]theme.Generation, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []theme.Generation
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var g theme.Generation
		if err := json.Unmarshal([]byte(line), &g); err != nil {
			return nil, fmt.Errorf("jsonl: %s: line %d: %w", l.path, lineNum, err)
		}
		records = append(records, g)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
