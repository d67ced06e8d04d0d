package scanner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-scout/internal/models"
)

// Watcher runs scans on a fixed interval using a cron schedule
type Watcher struct {
	cron      *cron.Cron
	scanner   *Scanner
	logger    *logrus.Logger
	onResults func([]models.AnalyzedProp)
	mu        sync.RWMutex
	isRunning bool
	jobID     cron.EntryID
}

// NewWatcher creates a watcher that calls onResults after every scheduled scan
func NewWatcher(s *Scanner, logger *logrus.Logger, onResults func([]models.AnalyzedProp)) *Watcher {
	return &Watcher{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		scanner:   s,
		logger:    logger,
		onResults: onResults,
	}
}

// Schedule registers the scan job at the given interval
func (w *Watcher) Schedule(intervalSeconds int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return fmt.Errorf("cannot schedule while watcher is running")
	}
	if intervalSeconds < 10 {
		intervalSeconds = 10
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(intervalSeconds-1)*time.Second)
		defer cancel()

		props, err := w.scanner.Scan(ctx)
		if err != nil {
			w.logger.WithError(err).Error("Scheduled scan failed")
			return
		}
		if w.onResults != nil {
			w.onResults(props)
		}
	}

	jobID, err := w.cron.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add scan job: %w", err)
	}
	w.jobID = jobID

	return nil
}

// Start begins scheduled scanning
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return
	}
	w.cron.Start()
	w.isRunning = true
	w.logger.Info("Watcher started")
}

// Stop halts scheduled scanning and waits for a running scan to finish
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isRunning {
		return
	}
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.isRunning = false
	w.logger.Info("Watcher stopped")
}
