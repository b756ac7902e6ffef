package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// DocumentFile stores the schedule document as a single pretty-printed JSON file.
type DocumentFile struct {
	path string
}

func NewDocumentFile(path string) *DocumentFile {
	return &DocumentFile{path: path}
}

func (f *DocumentFile) Path() string {
	return f.path
}

// GetDocument returns false when the file does not exist yet.
func (f *DocumentFile) GetDocument() (schedule.Document, bool, error) {
	var res schedule.Document
	found, err := readJSON(f.path, &res)
	if err != nil {
		return schedule.Document{}, false, fmt.Errorf("read document: %w", err)
	}
	if found && res.Fact.Data == nil {
		res.Fact.Data = schedule.Days{}
	}
	return res, found, nil
}

// PutDocument rewrites the whole file.
func (f *DocumentFile) PutDocument(doc schedule.Document) error {
	if err := writeJSON(f.path, doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read file=%s: %w", path, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal file=%s: %w", path, err)
	}
	return true, nil
}

// writeJSON writes to a temp file in the target directory and renames it over path,
// so readers never observe a partially written file.
func writeJSON(path string, v any) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd // rwxr-xr-x
		return fmt.Errorf("create dir=%s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err = enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:mnd // rw-r--r--
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
