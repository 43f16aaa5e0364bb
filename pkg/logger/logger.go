package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger простой уровневый логгер с выводом в файл и stdout
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает логгер. Если path пустой, пишет только в stdout.
// level: "debug" | "info" | "warn" | "error"
func New(path string, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	writers := []io.Writer{os.Stdout}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
		}
		l.file = f
		writers = append(writers, f)
	}

	l.out = log.New(io.MultiWriter(writers...), "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) logf(lvl Level, prefix, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf(prefix+" "+format, v...)
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "[DEBUG]", format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "[INFO]", format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "[WARN]", format, v...)
}

// Error пишет сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "[ERROR]", format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "[FATAL]", format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл лога
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}
