package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New возвращает логгер сервиса. В development пишет человекочитаемый вывод
// в консоль на уровне debug, иначе JSON на уровне info.
func New(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
