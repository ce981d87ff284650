package obj

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with loader-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text to w,
// or to stderr if w is nil.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to w, or to stderr if
// w is nil.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithName tags records with the name of the parsed input.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogParse logs the outcome of a parse.
func (l *Logger) LogParse(stats Stats, err error) {
	if err != nil {
		l.Debug("parse failed",
			"lines", stats.Lines,
			"error", err,
		)
		return
	}
	l.Debug("parse completed",
		"lines", stats.Lines,
		"positions", stats.Positions,
		"normals", stats.Normals,
		"texcoords", stats.TexCoords,
		"faces", stats.Faces,
	)
}
