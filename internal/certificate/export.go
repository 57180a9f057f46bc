package certificate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Exporter writes a certificate somewhere and reports where.
type Exporter interface {
	Export(ctx context.Context, c Certificate) (string, error)
}

// FileExporter writes certificates into a directory.
type FileExporter struct {
	Dir    string
	Format Format
}

// NewFileExporter returns an exporter for dir using the named format.
func NewFileExporter(dir, format string) (*FileExporter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &FileExporter{Dir: dir, Format: f}, nil
}

// Export writes c to Dir and returns the file path. An existing file with
// the same name is replaced.
func (e *FileExporter) Export(ctx context.Context, c Certificate) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := c.Encode(e.Format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create certificate dir: %w", err)
	}

	path := filepath.Join(e.Dir, c.FileName(e.Format))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}
