package emit

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// GeneratedFile records one emitted source file.
type GeneratedFile struct {
	// Path is the location the file was written to.
	Path string
	// Content is the normalized Go source.
	Content []byte
}

// Write runs the rendered source through goimports and writes the result
// through the filer. When normalization fails the raw text is parked in an
// .unformatted.go sidecar next to the intended output so it can be
// inspected, and the failure is returned.
func Write(filer Filer, path string, src []byte) (*GeneratedFile, error) {
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		_ = writeDebugUnformatted(filer, path, src)
		return nil, fmt.Errorf("formatting code: %w", err)
	}

	w, err := filer.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating source file %s: %w", path, err)
	}

	if _, err := w.Write(formatted); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing file %s: %w", path, err)
	}

	return &GeneratedFile{Path: path, Content: formatted}, nil
}

// writeDebugUnformatted parks unformatted code in a sidecar file next to
// the intended output. Best effort, failures here do not mask the
// formatting error.
func writeDebugUnformatted(filer Filer, path string, content []byte) error {
	debugPath := strings.TrimSuffix(path, ".go") + ".unformatted.go"

	w, err := filer.Create(debugPath)
	if err != nil {
		return err
	}

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
