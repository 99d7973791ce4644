package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Writer writes result files with atomic update semantics: output lands in a
// temporary file and is renamed into place, so an interrupted run never
// leaves a truncated results file behind.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteJSON marshals v as indented JSON and atomically replaces the target
// file.
func (w *Writer) WriteJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, w.path)
}
