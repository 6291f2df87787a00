package cron

import (
	"context"
	"time"
)

// Pinger checks that the attendance API is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamStatus receives the outcome of each probe
type UpstreamStatus interface {
	SetUpstreamUp(up bool)
}

// UpstreamJobs probes the attendance API and publishes its availability
type UpstreamJobs struct {
	pinger  Pinger
	status  UpstreamStatus
	timeout time.Duration
}

// NewUpstreamJobs creates the upstream health jobs. Each probe is bounded by timeout.
func NewUpstreamJobs(pinger Pinger, status UpstreamStatus, timeout time.Duration) *UpstreamJobs {
	return &UpstreamJobs{
		pinger:  pinger,
		status:  status,
		timeout: timeout,
	}
}

// RegisterJobs registers the health probe on interval
func (j *UpstreamJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("probe_upstream", interval, j.ProbeUpstream)
}

// ProbeUpstream pings the API once and records the result
func (j *UpstreamJobs) ProbeUpstream(ctx context.Context) error {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	err := j.pinger.Ping(ctx)
	j.status.SetUpstreamUp(err == nil)
	return err
}
