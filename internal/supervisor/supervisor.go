package supervisor

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// WorkerFunc is the body of one worker. It must return when ctx is
// cancelled; any return, error or nil, counts as a worker exit.
type WorkerFunc func(ctx context.Context, id int) error

// Policy tunes the restart behavior of the pool. The zero values for
// MaxRestarts and Backoff reproduce the legacy cluster behavior:
// unconditional, immediate, unbounded reforking.
type Policy struct {
	// Workers is the pool size. Zero means one worker per logical CPU,
	// detected once at startup and never re-evaluated.
	Workers int
	// MaxRestarts is the total refork budget across the pool. Zero means
	// unlimited.
	MaxRestarts int
	// Backoff is the initial delay before a refork. It doubles on every
	// consecutive refork of the same slot, up to MaxBackoff, and resets
	// after a run at least MaxBackoff long.
	Backoff time.Duration
	// MaxBackoff caps the doubled delay.
	MaxBackoff time.Duration
}

// Supervisor runs a fixed pool of workers and unconditionally replaces any
// worker that exits, within the bounds of its Policy. Workers share nothing
// with each other; whatever resource they contend on lives behind WorkerFunc.
type Supervisor struct {
	policy Policy
	work   WorkerFunc
	logger zerolog.Logger
}

// New creates a supervisor for the given worker body
func New(policy Policy, work WorkerFunc, logger zerolog.Logger) *Supervisor {
	return &Supervisor{
		policy: policy,
		work:   work,
		logger: logger,
	}
}

// workerExit reports one worker leaving its slot
type workerExit struct {
	id      int
	err     error
	started time.Time
}

// Run starts the pool and blocks until ctx is cancelled or the restart
// budget is exhausted. On cancellation it waits for every worker to return.
func (s *Supervisor) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	count := s.policy.Workers
	if count <= 0 {
		count = runtime.NumCPU()
	}

	exits := make(chan workerExit, count)
	delays := make(map[int]time.Duration, count)

	s.logger.Info().Int("workers", count).Msg("Starting worker pool")

	for id := 0; id < count; id++ {
		s.spawn(ctx, id, 0, exits)
	}

	alive := count
	restarts := 0
	var runErr error

	for alive > 0 {
		exit := <-exits
		alive--

		// Pool is winding down: account for the stragglers, nothing else.
		if ctx.Err() != nil {
			continue
		}

		if exit.err != nil {
			s.logger.Warn().Int("worker", exit.id).Err(exit.err).Msg("Worker exited")
		} else {
			s.logger.Info().Int("worker", exit.id).Msg("Worker exited cleanly")
		}

		restarts++
		if s.policy.MaxRestarts > 0 && restarts > s.policy.MaxRestarts {
			runErr = fmt.Errorf("restart budget exhausted after %d reforks", s.policy.MaxRestarts)
			s.logger.Error().Int("maxRestarts", s.policy.MaxRestarts).Msg("Restart budget exhausted, stopping pool")
			cancel()
			continue
		}

		delay := s.nextDelay(delays, exit)
		s.logger.Info().Int("worker", exit.id).Dur("delay", delay).Msg("Reforking worker")
		s.spawn(ctx, exit.id, delay, exits)
		alive++
	}

	if runErr != nil {
		return runErr
	}
	return nil
}

// nextDelay computes the refork delay for a slot: the configured backoff,
// doubled per consecutive refork, capped, and reset after a healthy run.
func (s *Supervisor) nextDelay(delays map[int]time.Duration, exit workerExit) time.Duration {
	if s.policy.Backoff <= 0 {
		return 0
	}

	healthy := s.policy.MaxBackoff
	if healthy <= 0 {
		healthy = s.policy.Backoff
	}
	if time.Since(exit.started) >= healthy {
		delays[exit.id] = s.policy.Backoff
		return s.policy.Backoff
	}

	delay, ok := delays[exit.id]
	if !ok {
		delay = s.policy.Backoff
	} else {
		delay *= 2
		if s.policy.MaxBackoff > 0 && delay > s.policy.MaxBackoff {
			delay = s.policy.MaxBackoff
		}
	}
	delays[exit.id] = delay
	return delay
}

// spawn launches one worker in slot id after an optional delay. Every
// spawned goroutine reports exactly one exit.
func (s *Supervisor) spawn(ctx context.Context, id int, delay time.Duration, exits chan<- workerExit) {
	go func() {
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				exits <- workerExit{id: id, err: ctx.Err(), started: time.Now()}
				return
			}
		}

		s.logger.Info().Int("worker", id).Msg("Worker started")
		started := time.Now()
		err := s.work(ctx, id)
		exits <- workerExit{id: id, err: err, started: started}
	}()
}
