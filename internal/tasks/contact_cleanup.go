package tasks

import (
	"context"
	"time"

	"formgate/internal/logging"
	"formgate/internal/repository"
)

// ContactCleanup periodically deletes contact records older than the
// configured retention period
type ContactCleanup struct {
	contacts  repository.ContactRepository
	retention time.Duration
	interval  time.Duration
}

// NewContactCleanup creates a new cleanup task keeping contacts for
// retentionDays days
func NewContactCleanup(contacts repository.ContactRepository, retentionDays int) *ContactCleanup {
	return &ContactCleanup{
		contacts:  contacts,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  6 * time.Hour,
	}
}

// Start begins the cleanup task in the background
func (cc *ContactCleanup) Start(ctx context.Context) {
	go cc.runPeriodically(ctx)
}

// runPeriodically runs the cleanup task at regular intervals
func (cc *ContactCleanup) runPeriodically(ctx context.Context) {
	logger := logging.GetLogger()

	// Run immediately on startup
	cc.runOnce(ctx, logger)

	ticker := time.NewTicker(cc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cc.runOnce(ctx, logger)
		}
	}
}

func (cc *ContactCleanup) runOnce(ctx context.Context, logger *logging.Logger) {
	cutoff := time.Now().Add(-cc.retention)
	deleted, err := cc.contacts.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("contact cleanup failed: %v", err)
		return
	}
	if deleted > 0 {
		logger.Info("contact cleanup removed %d records older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
