// Package logger configures the global zerolog logger. Development gets a
// console writer; production and staging get JSON lines tagged with the service.
package logger

import (
	"io"
	"os"
	"slices"
	"time"

	"conectapro/config"
	"conectapro/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

var structuredEnvs = []string{constant.ServerEnvProduction, constant.ServerEnvStaging}

// InitLogger installs the console logger used until Configure runs.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	if slices.Contains(structuredEnvs, cfg.Server.Env) {
		UseWriter(os.Stdout, cfg.App.Name)
	}

	log.Debug().Str("env", cfg.Server.Env).Str("level", zerolog.GlobalLevel().String()).Msg("Logger configured")
}

// UseWriter replaces the global logger with a structured one writing to w.
func UseWriter(w io.Writer, service string) {
	log.Logger = zerolog.New(w).With().Timestamp().Str("service", service).Logger()
}

// ErrorWithStack logs err with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// ParseLevel falls back to info for an empty or unknown level.
func ParseLevel(raw string) zerolog.Level {
	if raw == "" {
		return defaultLevel
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		log.Warn().Str("loglevel", raw).Msg("Unknown log level, using info")

		return defaultLevel
	}

	return level
}

func SetLogLevel(cfg *config.Config) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Server.LogLevel))
}
