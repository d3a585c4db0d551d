package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Init инициализирует глобальный логгер.
// env: "development" или "production"; level: debug|info|warn|error (пусто - по env).
func Init(env, level string) {
	InitWithWriter(env, level, os.Stdout)
}

// InitWithWriter - то же, что Init, но с произвольным выводом (используется в тестах)
func InitWithWriter(env, level string, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(env, level),
		AddSource: true,
	}

	var handler slog.Handler
	if env == "development" || env == "test" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	log = slog.New(handler).With("service", "workhub")
	slog.SetDefault(log)
}

func parseLevel(env, level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		once.Do(func() {
			if log == nil {
				Init("development", "")
			}
		})
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// TransitionLog фиксирует смену статуса сущности (task, application, extension, delivery, payment)
func TransitionLog(entity, id, from, to, actorID string) {
	GetLogger().Info("state transition",
		"entity", entity,
		"entity_id", id,
		"from", from,
		"to", to,
		"actor_id", actorID,
	)
}

// WorkerLog логирует операцию фонового воркера
func WorkerLog(worker, operation string, duration time.Duration, err error) {
	fields := []any{
		"worker", worker,
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("worker operation failed", fields...)
		return
	}
	GetLogger().Info("worker operation completed", fields...)
}
