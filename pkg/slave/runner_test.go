package slave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerPropagatesFailure(t *testing.T) {
	boom := errors.New("boom")
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	r.Go(RunFunc(func(ctx context.Context) error {
		time.Sleep(10 * time.Millisecond)
		return boom
	}))
	// the failure cancels the waiting runnable, whose Canceled result
	// is not treated as an error
	require.Equal(t, boom, r.Wait())
}

func TestRunnerCleanStop(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error { return nil }))
	r.Go(RunFunc(func(ctx context.Context) error { return nil }))
	require.NoError(t, r.Wait())
}

func TestRunnerCleanCompletionKeepsOthersRunning(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error { return nil }))
	var canceled bool
	r.Go(RunFunc(func(ctx context.Context) error {
		// outlive the clean completion of the first runnable
		select {
		case <-ctx.Done():
			canceled = true
		case <-time.After(50 * time.Millisecond):
		}
		return nil
	}))
	require.NoError(t, r.Wait())
	require.False(t, canceled, "clean completion must not stop siblings")
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())
	e1 := errors.New("one")
	errs.Add(nil, e1)
	require.Equal(t, e1, errs.Aggregate())
	errs.Add(errors.New("two"))
	require.Contains(t, errs.Aggregate().Error(), "Multiple errors:")
}
