package repository

import (
	"context"

	"mptransport/models"
)

type TransporterRepository interface {
	Create(ctx context.Context, t *models.Transporter) error
	Get(ctx context.Context, vehicleNumber string) (*models.Transporter, error)
	// Search matches the vehicle number exactly or the owner name partially.
	Search(ctx context.Context, term string) (*models.Transporter, error)
	ListVehicleNumbers(ctx context.Context) ([]string, error)
	Update(ctx context.Context, t *models.Transporter) (bool, error)
	Delete(ctx context.Context, vehicleNumber string) (bool, error)
}
