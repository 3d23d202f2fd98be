package tracker

import "time"

// RestStatus is the state of the rest countdown.
type RestStatus struct {
	Running          bool `json:"running"`
	RemainingSeconds int  `json:"remaining_seconds"`
}

// StartRest starts (or restarts) the rest countdown. A non-positive d uses
// the configured default.
func (t *Tracker) StartRest(d time.Duration) RestStatus {
	if d <= 0 {
		d = t.defaultRest
	}
	t.rest.Start(d, nil, func() {
		t.metrics.CounterRestTimersExpired.Inc()
		t.log.Info("rest finished", "duration", d)
	})
	return t.Rest()
}

// CancelRest stops the countdown. It reports whether one was running.
func (t *Tracker) CancelRest() bool {
	return t.rest.Cancel()
}

// Rest reports the countdown state.
func (t *Tracker) Rest() RestStatus {
	return RestStatus{
		Running:          t.rest.Running(),
		RemainingSeconds: int(t.rest.Remaining().Round(time.Second) / time.Second),
	}
}
