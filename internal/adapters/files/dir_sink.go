package files

import (
	"context"
	"eov-wgs-service/internal/platform/obs"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const filePermission = 0o644

// DirSink writes exported files into a single directory.
// Names are reduced to their base so callers cannot escape the directory.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

func (s *DirSink) Write(ctx context.Context, name string, data []byte) (_ string, err error) {
	defer obs.Time(ctx, "files.Write")(&err)

	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("write file: invalid name %q", name)
	}
	if s.Dir == "" {
		return "", errors.New("write file: export directory is not set")
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("write file: create dir %q: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, base)
	tmp, err := os.CreateTemp(s.Dir, "."+base+".*")
	if err != nil {
		return "", fmt.Errorf("write file: create temp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write file %q: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("write file %q: close: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), filePermission); err != nil {
		return "", fmt.Errorf("write file %q: chmod: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("write file %q: rename: %w", path, err)
	}

	return path, nil
}
