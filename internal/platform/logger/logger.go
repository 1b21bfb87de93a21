package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Builder assembles the process logger from a writer or a log file path.
type Builder struct {
	writer io.Writer
	path   string
	level  string
}

func New() *Builder {
	return &Builder{writer: os.Stdout, level: "info"}
}

func (b *Builder) ToWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

func (b *Builder) ToFile(path string) *Builder {
	b.path = strings.TrimSpace(path)
	return b
}

func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

// Make returns the logger and the opened log file, if any. The caller closes the file.
func (b *Builder) Make() (zerolog.Logger, *os.File, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(b.level)))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logger: parse level %q: %w", b.level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	w := b.writer
	var file *os.File
	if b.path != "" {
		file, err = os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("logger: open %q: %w", b.path, err)
		}
		w = zerolog.SyncWriter(file)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), file, nil
}
