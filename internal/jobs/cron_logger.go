package jobs

import (
	"github.com/rs/zerolog"
)

// cronLogger adapts zerolog to cron.Logger so skipped and panicking runs end
// up in the job's log stream.
type cronLogger struct {
	logger zerolog.Logger
}

// Info logs routine scheduler messages at debug level.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

// Error logs scheduler failures, including recovered panics.
func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
