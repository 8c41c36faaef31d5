package classify

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"esaj-lookup/internal/record"
)

// AppellateSession is the stateful browser side of the pipeline. One session
// serves one batch and is closed with it.
type AppellateSession interface {
	Fetch(ctx context.Context, number string) (*html.Node, error)
	Snapshot() ([]byte, error)
	Close()
}

// SessionFactory opens a fresh appellate session. Startup failure is a
// batch-level event: the whole batch collapses into a single system error.
type SessionFactory func() (AppellateSession, error)

// Runner processes one batch of case numbers sequentially over a dedicated
// appellate session.
type Runner struct {
	newSession  SessionFactory
	trial       TrialFetcher
	pause       time.Duration
	snapshotDir string // "" disables page snapshots
	log         *zap.Logger
}

func NewRunner(newSession SessionFactory, trial TrialFetcher, pause time.Duration, snapshotDir string, log *zap.Logger) *Runner {
	return &Runner{
		newSession:  newSession,
		trial:       trial,
		pause:       pause,
		snapshotDir: snapshotDir,
		log:         log,
	}
}

// Run classifies every case number in order and partitions the outcomes into
// the three batch sequences. progress is invoked with the 1-based position
// before each case is processed. Run always returns a batch; it never aborts.
func (r *Runner) Run(ctx context.Context, numbers []string, progress func(current, total int)) record.Batch {
	var batch record.Batch

	session, err := r.newSession()
	if err != nil {
		r.log.Error("browser session failed to start", zap.Error(err))
		batch.Errors = append(batch.Errors, record.ErrorEntry{
			Number: SystemRow,
			Reason: reasonBrowserPrefix + err.Error(),
		})
		return batch
	}
	defer session.Close()

	classifier := NewClassifier(session, r.trial, r.pause, r.log)

	for i, number := range numbers {
		if progress != nil {
			progress(i+1, len(numbers))
		}

		outcome := classifier.Classify(ctx, number)
		switch outcome.Kind {
		case KindResult:
			batch.Results = append(batch.Results, *outcome.Record)
		case KindInconclusive:
			batch.Inconclusive = append(batch.Inconclusive, record.InconclusiveEntry{
				Number: outcome.Number,
				Note:   outcome.Note,
			})
		default:
			batch.Errors = append(batch.Errors, record.ErrorEntry{
				Number: outcome.Number,
				Reason: outcome.Reason,
			})
			if outcome.Reason == ReasonNoData {
				r.snapshot(session, number)
			}
		}
	}
	return batch
}

// snapshot saves a JPEG of the session's current page for cases no parser
// could explain. Best effort only.
func (r *Runner) snapshot(session AppellateSession, number string) {
	if r.snapshotDir == "" {
		return
	}
	img, err := session.Snapshot()
	if err != nil {
		r.log.Debug("snapshot failed", zap.String("case", number), zap.Error(err))
		return
	}
	if err := os.MkdirAll(r.snapshotDir, 0o755); err != nil {
		r.log.Debug("snapshot dir", zap.Error(err))
		return
	}
	path := filepath.Join(r.snapshotDir, number+".jpg")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		r.log.Debug("snapshot write failed", zap.String("path", path), zap.Error(err))
	}
}
