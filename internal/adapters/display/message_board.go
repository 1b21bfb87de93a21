package display

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultBoardSize = 50

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Message struct {
	Level Level
	Text  string
	At    time.Time
}

// MessageBoard is the user-facing message surface: a bounded list of recent
// messages, newest last. Every message is also logged.
type MessageBoard struct {
	mu    sync.Mutex
	size  int
	items []Message
	now   func() time.Time
}

func NewMessageBoard(size int) *MessageBoard {
	if size <= 0 {
		size = defaultBoardSize
	}
	return &MessageBoard{size: size, now: time.Now}
}

func (b *MessageBoard) Info(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Info().Str("message", msg).Msg("user message")
	b.post(LevelInfo, msg)
}

func (b *MessageBoard) Error(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Warn().Str("message", msg).Msg("user error")
	b.post(LevelError, msg)
}

func (b *MessageBoard) post(level Level, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, Message{Level: level, Text: msg, At: b.now().UTC()})
	if over := len(b.items) - b.size; over > 0 {
		b.items = append([]Message(nil), b.items[over:]...)
	}
}

// Recent returns a copy of the stored messages, oldest first.
func (b *MessageBoard) Recent() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Message, len(b.items))
	copy(out, b.items)
	return out
}
