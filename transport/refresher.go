// SPDX-License-Identifier: EPL-2.0

package transport

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// MinRefreshInterval caps the repaint rate at roughly 60 Hz.
const MinRefreshInterval = 16 * time.Millisecond

// Refresher emits repaint requests at a fixed cadence while the widget is
// visible. Requests coalesce: a slow consumer sees at most one pending tick.
type Refresher struct {
	interval time.Duration
	visible  atomic.Bool
	log      logrus.FieldLogger
}

func NewRefresher(interval time.Duration, log logrus.FieldLogger) *Refresher {
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := &Refresher{
		interval: max(interval, MinRefreshInterval),
		log:      log,
	}
	r.visible.Store(true)

	return r
}

func (r *Refresher) Interval() time.Duration { return r.interval }

// SetVisible suppresses ticks while the widget is hidden or minimised. It is
// safe to call from any goroutine.
func (r *Refresher) SetVisible(v bool) { r.visible.Store(v) }

// Run starts the ticker. The returned channel is closed once ctx is done.
func (r *Refresher) Run(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.log.WithFields(logrus.Fields{
			"function": "Run",
			"interval": r.interval.String(),
		}).Debug("Refresher started")

		for {
			select {
			case <-ctx.Done():
				r.log.WithFields(logrus.Fields{
					"function": "Run",
				}).Debug("Refresher stopped")
				return
			case <-ticker.C:
				if !r.visible.Load() {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}
