package repository

import (
	"context"

	"mptransport/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer) error
	// FindByName returns the first customer whose name contains name.
	FindByName(ctx context.Context, name string) (*models.Customer, error)
	GetByName(ctx context.Context, name string) (*models.Customer, error)
	FindByIDNumber(ctx context.Context, idNumber string) (*models.Customer, error)
	ListNames(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Search(ctx context.Context, term string) ([]*models.Customer, error)
	// Update rewrites the row keyed by c.CustomerCode.
	Update(ctx context.Context, c *models.Customer) (bool, error)
	Delete(ctx context.Context, name string) (bool, error)
}
