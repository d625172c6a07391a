package services

import (
	"context"

	"mptransport/models"
)

const ActivityListLimit = 100

type ActivityService struct {
	Deps
}

func (s *ActivityService) List(ctx context.Context, entity, identifier string) ([]*models.Activity, error) {
	return s.Activity.List(ctx, entity, identifier, ActivityListLimit)
}
