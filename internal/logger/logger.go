package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			With().
			Timestamp().
			Logger().
			Level(zerolog.DebugLevel)
	}

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "rental-contracts").
		Logger().
		Level(zerolog.InfoLevel)
}
