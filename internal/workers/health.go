// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/models"
)

const defaultHealthInterval = time.Minute

// HealthJob probes the backend on a ticker and logs when it becomes
// unreachable or recovers. The job is idle until Start is called.
type HealthJob struct {
	client   backend.Service
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	last   Probe
	probed bool
}

// Probe is the outcome of one health check.
type Probe struct {
	Health models.Health
	Err    error
}

// NewHealthJob creates a HealthJob. If interval is zero or negative it
// defaults to one minute.
func NewHealthJob(client backend.Service, interval time.Duration, log *logger.Logger) *HealthJob {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &HealthJob{client: client, interval: interval, logger: log}
}

// Start stops any previously running probe, then launches a goroutine that
// calls Health every interval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *HealthJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probe goroutine and blocks until it has exited.
func (j *HealthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// lastProbe returns the most recent probe. ok is false until the first probe
// has finished.
func (j *HealthJob) lastProbe() (Probe, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last, j.probed
}

func (j *HealthJob) probe(ctx context.Context) {
	health, err := j.client.Health(ctx)
	if ctx.Err() != nil {
		return
	}

	j.mu.Lock()
	wasDown := j.probed && j.last.Err != nil
	wasUp := j.probed && j.last.Err == nil
	j.last, j.probed = Probe{Health: health, Err: err}, true
	j.mu.Unlock()

	switch {
	case err != nil && !wasDown:
		j.logger.Warn().Err(err).Str("url", j.client.URL()).Msg("backend unreachable")
	case err == nil && !wasUp:
		j.logger.Info().Str("url", health.URL).Dur("latency", health.Latency).Msg("backend reachable")
	default:
		j.logger.Debug().Err(err).Dur("latency", health.Latency).Msg("health probe")
	}
}
