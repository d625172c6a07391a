package repository

import (
	"context"

	"mptransport/models"
)

type StatusRepository interface {
	// Create inserts s unless a row for the GR exists; it reports whether
	// a row was written.
	Create(ctx context.Context, s *models.Status) (bool, error)
	Get(ctx context.Context, grNo string) (*models.Status, error)
	List(ctx context.Context) ([]*models.Status, error)
	// Save writes every field of s, inserting the row when missing.
	Save(ctx context.Context, s *models.Status) error
	Delete(ctx context.Context, grNo string) (bool, error)
}
