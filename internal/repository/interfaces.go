package repository

import (
	"context"
	"time"

	"formgate/internal/models"

	"github.com/google/uuid"
)

// ContactRepository defines the interface for contact-related database operations
type ContactRepository interface {
	// Create persists a new contact record
	Create(ctx context.Context, input models.CreateContactInput) (*models.Contact, error)
	// GetByUUID returns a contact by its public identifier
	GetByUUID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	// List returns contacts ordered by creation time, newest first
	List(ctx context.Context, offset, limit int) ([]*models.Contact, error)
	// Count returns the total number of contacts
	Count(ctx context.Context) (int64, error)
	// DeleteOlderThan removes contacts created before the cutoff and
	// returns how many rows were deleted
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
