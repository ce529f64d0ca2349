package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger and stamps every record with a component
// attribute so service and transport logs stay distinguishable.
type Logger struct {
	*slog.Logger
	component string
}

type Config struct {
	Level   slog.Level
	Handler slog.Handler
}

func DefaultConfig() Config {
	return Config{Level: slog.LevelInfo}
}

func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.Level})
	}
	return &Logger{
		Logger:    slog.New(handler),
		component: "app",
	}
}

// WithComponent returns a logger whose records carry the given component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

func (l *Logger) Component() string {
	return l.component
}
