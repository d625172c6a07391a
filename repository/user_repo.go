package repository

import (
	"context"

	"mptransport/models"
)

// UserRepository stores back-office accounts. Passwords arrive hashed.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	SearchByName(ctx context.Context, name string) ([]*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
