package repository

import (
	"context"
	"time"

	"mptransport/models"
)

type TransportRecordRepository interface {
	Create(ctx context.Context, rec *models.TransportRecord) error
	Get(ctx context.Context, grNo string) (*models.TransportRecord, error)
	List(ctx context.Context) ([]*models.TransportRecord, error)
	// History lists the newest records whose consignor and consignee
	// names contain the given terms, case-insensitively.
	History(ctx context.Context, consignor, consignee string, limit int) ([]*models.TransportRecord, error)
	Update(ctx context.Context, rec *models.TransportRecord) (bool, error)
	UpdatePDF(ctx context.Context, grNo, path string, at time.Time) error
	Delete(ctx context.Context, grNo string) (bool, error)
}
