package repository

import (
	"context"

	"mptransport/models"
)

type CompanyProfileRepository interface {
	// Save inserts a new profile row; the newest row is the current one.
	Save(ctx context.Context, p *models.CompanyProfile) error
	Latest(ctx context.Context) (*models.CompanyProfile, error)
}
