package jsonl

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/theme"
)

// Append adds a record to the end of the log, creating the file and its
// parent directories if needed.
func (l *Log) Append(g theme.Generation) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.Write(data)
	return err
}
