// Package logging sets up the structured logger used by the pasteparser
// command.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	LogLevel        string `json:"log_level" yaml:"log_level"`
	Format          string `json:"format" yaml:"format"` // json, text
	IncludeSrc      bool   `json:"include_src" yaml:"include_src"`
	LogToFile       bool   `json:"log_to_file" yaml:"log_to_file"`
	Filename        string `json:"filename" yaml:"filename"`
	MaxSize         int    `json:"max_size" yaml:"max_size"`
	MaxAge          int    `json:"max_age" yaml:"max_age"`
	MaxBackups      int    `json:"max_backups" yaml:"max_backups"`
	CompressOldLogs bool   `json:"compress_old_logs" yaml:"compress_old_logs"`
}

// Logger is a configured logger and the log file it writes to, if any.
type Logger struct {
	*slog.Logger
	file *lumberjack.Logger
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// InitLogger creates a logger writing to w and, if cfg asks for it, to a
// rotating log file. The logger is also installed as the slog default.
func InitLogger(cfg LoggerConfig, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{
		Level:     LevelFromString(cfg.LogLevel),
		AddSource: cfg.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.Replace(source.Function, "github.com/jaittola/pasteparser", "", -1)
				}
			}
			return a
		},
	}

	l := Logger{}
	if cfg.LogToFile && cfg.Filename != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxAge:     cfg.MaxAge,  // days
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.CompressOldLogs,
		}
		w = io.MultiWriter(w, l.file)
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	l.Logger = slog.New(handler)
	slog.SetDefault(l.Logger)
	return &l
}

// LevelFromString converts a level name to a slog level. Unknown names are
// the info level.
func LevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
