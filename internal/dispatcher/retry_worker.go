package dispatcher

import (
	"context"
	"time"

	notifRepo "notification-admin/internal/notification/repository"
	pkgLog "notification-admin/pkg/log"
)

const retryBatchSize = 100

// RetryWorker periodically re-attempts deliveries whose backoff has elapsed.
type RetryWorker struct {
	l            pkgLog.Logger
	repo         notifRepo.Repository
	dispatcher   Dispatcher
	pollInterval time.Duration
}

func NewRetryWorker(l pkgLog.Logger, repo notifRepo.Repository, d Dispatcher, pollInterval time.Duration) *RetryWorker {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}

	return &RetryWorker{
		l:            l,
		repo:         repo,
		dispatcher:   d,
		pollInterval: pollInterval,
	}
}

// Start runs the polling loop until the context is cancelled.
func (w *RetryWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.l.Infof(ctx, "internal.dispatcher.RetryWorker: started, polling every %s", w.pollInterval)

	for {
		select {
		case <-ctx.Done():
			w.l.Info(ctx, "internal.dispatcher.RetryWorker: stopping")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *RetryWorker) tick(ctx context.Context) {
	due, err := w.repo.ListDue(ctx, notifRepo.ListDueOptions{
		Now:   timeNow(),
		Limit: retryBatchSize,
	})
	if err != nil {
		w.l.Errorf(ctx, "internal.dispatcher.RetryWorker.tick.ListDue: %v", err)
		return
	}

	for _, n := range due {
		w.dispatcher.Process(ctx, n)
	}
}
