package repository

import (
	"context"

	"mptransport/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, invoiceNumber string) (*models.Payment, error)
	List(ctx context.Context, limit int) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) (bool, error)
	Delete(ctx context.Context, invoiceNumber string) (bool, error)
}
