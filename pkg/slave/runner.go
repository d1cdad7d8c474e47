package slave

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang/glog"
)

// Runnable is a long-running component driven by a context.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// AggregatedError aggregates multiple errors.
type AggregatedError struct {
	Errors []error
}

// Error implements error.
func (e *AggregatedError) Error() string {
	msg := make([]string, len(e.Errors)+1)
	msg[0] = "Multiple errors:"
	for n, err := range e.Errors {
		msg[n+1] = err.Error()
	}
	return strings.Join(msg, "\n")
}

// Add adds errors to be aggregated, skipping nil.
func (e *AggregatedError) Add(errs ...error) *AggregatedError {
	for _, err := range errs {
		if err != nil {
			e.Errors = append(e.Errors, err)
		}
	}
	return e
}

// Aggregate returns nil, the single error, or the aggregate.
func (e *AggregatedError) Aggregate() error {
	switch len(e.Errors) {
	case 0:
		return nil
	case 1:
		return e.Errors[0]
	}
	return e
}

// Runner runs Runnables and collects their errors. The first failure
// cancels the shared context so the remaining runnables stop too.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	count  int
	errCh  chan error
}

// NewRunner creates a Runner with a background context.
func NewRunner() *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{ctx: ctx, cancel: cancel, errCh: make(chan error, 8)}
}

// HandleSignals cancels the runner on SIGINT/SIGTERM.
func (r *Runner) HandleSignals() *Runner {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		glog.Info("stop requested")
		r.cancel()
	}()
	return r
}

// Go spawns runnables on the shared context.
func (r *Runner) Go(runners ...Runnable) *Runner {
	for _, runner := range runners {
		r.count++
		go func(runner Runnable) {
			r.errCh <- runner.Run(r.ctx)
		}(runner)
	}
	return r
}

// Wait blocks until every spawned Runnable stops and aggregates
// their errors. The first failure cancels the shared context; a
// clean completion leaves the other runnables running. Context
// cancellation is not treated as a failure.
func (r *Runner) Wait() error {
	defer r.cancel()
	var errs AggregatedError
	for i := 0; i < r.count; i++ {
		err := <-r.errCh
		if err != nil && !errors.Is(err, context.Canceled) {
			errs.Add(err)
			r.cancel()
		}
	}
	return errs.Aggregate()
}
