package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// AsyncDispatcher runs fan-outs in the background after a transaction has
// committed. The request context is detached so a finished HTTP request does
// not cancel the sends.
type AsyncDispatcher struct {
	fanout  *Fanout
	timeout time.Duration
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

func NewAsyncDispatcher(fanout *Fanout, timeout time.Duration, logger zerolog.Logger) *AsyncDispatcher {
	return &AsyncDispatcher{
		fanout:  fanout,
		timeout: timeout,
		logger:  logger.With().Str("component", "notification_fanout").Logger(),
	}
}

func (d *AsyncDispatcher) Publish(ctx context.Context, event Event) {
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		report := d.fanout.Dispatch(sendCtx, event)
		d.log(event, report)
	}()
}

// Wait blocks until every published fan-out has finished.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}

func (d *AsyncDispatcher) log(event Event, report Report) {
	if len(report.Errors) == 0 {
		d.logger.Debug().
			Str("kind", string(event.Kind)).
			Int("sent", report.TotalNotificationsSent).
			Msg("notifications sent")
		return
	}

	arr := zerolog.Arr()
	for _, err := range report.Errors {
		arr.Str(err.Error())
	}
	d.logger.Warn().
		Str("kind", string(event.Kind)).
		Int("sent", report.TotalNotificationsSent).
		Array("failures", arr).
		Msg("some notifications were not delivered")
}
