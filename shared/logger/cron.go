package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CronLogger routes robfig/cron logs through the global zerolog logger.
type CronLogger struct{}

func (CronLogger) Info(msg string, keysAndValues ...any) {
	withFields(log.Debug(), keysAndValues).Msg(msg)
}

func (CronLogger) Error(err error, msg string, keysAndValues ...any) {
	withFields(log.Error().Err(err), keysAndValues).Msg(msg)
}

func withFields(event *zerolog.Event, keysAndValues []any) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}

		event = event.Interface(key, keysAndValues[i+1])
	}

	return event
}
