package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoj-submit/dmoj-submit/client"
	"github.com/dmoj-submit/dmoj-submit/internal/grading"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"go.uber.org/zap"
)

// DefaultInterval is the time between the starts of two consecutive fetches.
const DefaultInterval = time.Second

// SnapshotFetcher returns the current state of a submission.
type SnapshotFetcher interface {
	Submission(ctx context.Context, id string) (*client.Submission, error)
}

// Tracker receives each snapshot's cases. ui.Progress implements it.
type Tracker interface {
	Extend(tree grading.Tree)
	SetMessage(msg string)
	Finish()
}

type Options struct {
	// Interval defaults to DefaultInterval when zero
	Interval time.Duration
}

// Poll fetches the submission until the judge reports a result, feeding every
// snapshot to tracker. The tracker is finished on every return path.
func Poll(ctx context.Context, fetcher SnapshotFetcher, id string, tracker Tracker, opts Options) (grading.Outcome, error) {
	defer tracker.Finish()

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	for polls := 1; ; polls++ {
		start := time.Now()
		sub, err := fetcher.Submission(ctx, id)
		if err != nil {
			return grading.Outcome{}, fmt.Errorf("failed to fetch submission %s: %w", id, err)
		}
		logger.Debug("polled submission",
			zap.String("id", id),
			zap.Int("poll", polls),
			zap.String("status", sub.Status),
			zap.Int("units", len(sub.Cases)))

		tracker.Extend(sub.Cases)
		if sub.Done() {
			return sub.Outcome(), nil
		}
		if label, ok := grading.Label(sub.Status); ok {
			tracker.SetMessage(label + "...")
		}

		// subtract the time the request itself took
		wait := interval - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return grading.Outcome{}, ctx.Err()
		case <-time.After(wait):
		}
	}
}
