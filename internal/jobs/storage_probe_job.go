package jobs

import (
	"context"
	"sync/atomic"
	"time"

	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const probeTimeout = 3 * time.Second

// StorageStatusRecorder receives the outcome of every probe, e.g. a gauge.
type StorageStatusRecorder interface {
	SetStorageUp(up bool)
}

// StorageProbeJob pings the order store on a cron schedule and remembers
// the last outcome for the readiness endpoint.
type StorageProbeJob struct {
	pinger   ports.StoragePinger
	recorder StorageStatusRecorder
	schedule string
	cron     *cron.Cron
	logger   ports.Logger

	ready     atomic.Bool
	probed    atomic.Bool
	lastCheck atomic.Int64
}

// NewStorageProbeJob creates a probe for pinger. schedule is any expression the
// cron parser accepts, e.g. "@every 30s". recorder may be nil.
func NewStorageProbeJob(
	pinger ports.StoragePinger,
	recorder StorageStatusRecorder,
	schedule string,
	logger ports.Logger,
) *StorageProbeJob {
	return &StorageProbeJob{
		pinger:   pinger,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "storage_probe_job"),
	}
}

// Start probes once synchronously so readiness is known before traffic
// arrives, then schedules further probes.
func (j *StorageProbeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Probe(context.Background())
	}); err != nil {
		return err
	}

	j.Probe(context.Background())
	j.cron.Start()
	j.logger.Info("storage probe job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running probe to finish.
func (j *StorageProbeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("storage probe job stopped")
}

// Probe pings the store once and records the outcome.
func (j *StorageProbeJob) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := j.pinger.Ping(ctx)
	up := err == nil

	was := j.ready.Swap(up)
	if first := !j.probed.Swap(true); first || was != up {
		if up {
			j.logger.Info("storage is reachable")
		} else {
			j.logger.Error("storage is unreachable", err)
		}
	}
	j.lastCheck.Store(time.Now().UnixNano())
	if j.recorder != nil {
		j.recorder.SetStorageUp(up)
	}

	return up
}

// Ready reports the outcome of the last probe. It is false before the
// first probe has run.
func (j *StorageProbeJob) Ready() bool {
	return j.ready.Load()
}

// LastCheck returns when the last probe finished, or the zero time.
func (j *StorageProbeJob) LastCheck() time.Time {
	ns := j.lastCheck.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
