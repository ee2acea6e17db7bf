package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger - тонкая обертка над zerolog для структурированного логирования.
type Logger struct {
	zlog zerolog.Logger
}

// Config задает уровень и формат вывода логов.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json или console
	Output io.Writer
}

// DefaultConfig возвращает настройки по умолчанию: info, json, stdout.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "json",
		Output: os.Stdout,
	}
}

// New создает логгер по конфигурации. nil означает настройки по умолчанию.
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	var zlog zerolog.Logger
	if cfg.Format == "console" {
		// Читаемый вывод для разработки
		output := zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
		zlog = zerolog.New(output).With().Timestamp().Logger()
	} else {
		// Структурированный JSON для продакшена
		zlog = zerolog.New(cfg.Output).With().Timestamp().Logger()
	}
	return &Logger{zlog: zlog.Level(parseLevel(cfg.Level))}
}

// Infof пишет сообщение уровня info.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zlog.Info().Msgf(format, args...)
}

// Warnf пишет сообщение уровня warn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zlog.Warn().Msgf(format, args...)
}

// Errorf пишет сообщение уровня error вместе с ошибкой.
func (l *Logger) Errorf(err error, format string, args ...interface{}) {
	l.zlog.Error().Err(err).Msgf(format, args...)
}

// Fatalf пишет сообщение уровня fatal и завершает процесс.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.zlog.Fatal().Msgf(format, args...)
}

// Request пишет запись об обработанном HTTP-запросе.
func (l *Logger) Request(method, path string, status int, elapsed time.Duration) {
	l.zlog.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("request")
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
