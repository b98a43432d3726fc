package emit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Filer creates the scoped output streams generated sources are written
// through. Streams must be closed on every exit path; a file is considered
// emitted once its stream closed cleanly.
type Filer interface {
	Create(path string) (io.WriteCloser, error)
}

// OSFiler writes into the real filesystem, creating directories as needed.
type OSFiler struct{}

// Create opens the output file for writing, truncating previous output.
func (OSFiler) Create(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("creating file %s: %w", path, err)
	}

	return f, nil
}

// MemFiler collects written files in memory, for tests and dry runs.
// A file becomes visible in Files once its stream is closed.
type MemFiler struct {
	Files map[string][]byte
}

// NewMemFiler creates an empty in-memory filer.
func NewMemFiler() *MemFiler {
	return &MemFiler{Files: make(map[string][]byte)}
}

// Create opens an in-memory stream for the given path.
func (m *MemFiler) Create(path string) (io.WriteCloser, error) {
	return &memFile{filer: m, path: path}, nil
}

type memFile struct {
	buf   bytes.Buffer
	filer *MemFiler
	path  string
}

func (f *memFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *memFile) Close() error {
	f.filer.Files[f.path] = f.buf.Bytes()
	return nil
}
