package repository

import (
	"context"

	"mptransport/models"
)

type ChallanRepository interface {
	Create(ctx context.Context, c *models.Challan) error
	Get(ctx context.Context, challanNo string) (*models.Challan, error)
	List(ctx context.Context) ([]*models.Challan, error)
	Update(ctx context.Context, c *models.Challan) (bool, error)
	Delete(ctx context.Context, challanNo string) (bool, error)
}

type CrossingRepository interface {
	Create(ctx context.Context, c *models.CrossingStatement) error
	Get(ctx context.Context, cxNumber string) (*models.CrossingStatement, error)
	List(ctx context.Context) ([]*models.CrossingStatement, error)
	Update(ctx context.Context, c *models.CrossingStatement) (bool, error)
	Delete(ctx context.Context, cxNumber string) (bool, error)
}
