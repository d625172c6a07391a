package repository

import (
	"context"

	"mptransport/models"
)

// ActivityRepository is the audit trail of façade writes. It lives outside
// the SQL transaction; entries are written after commit.
type ActivityRepository interface {
	Record(ctx context.Context, a *models.Activity) error
	List(ctx context.Context, entity, identifier string, limit int) ([]*models.Activity, error)
}

// NopActivityRepo discards entries when no activity store is configured.
type NopActivityRepo struct{}

func (NopActivityRepo) Record(context.Context, *models.Activity) error { return nil }

func (NopActivityRepo) List(context.Context, string, string, int) ([]*models.Activity, error) {
	return []*models.Activity{}, nil
}
