package services

import (
	"context"
	"strings"

	"mptransport/models"
	"mptransport/repository"
)

type StatusService struct {
	Deps
}

func (s *StatusService) Get(ctx context.Context, grNo string) (*models.Status, error) {
	grNo = normalizeKey(grNo)
	st, err := s.Store.Repos().Statuses.Get(ctx, grNo)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, notFound("status", grNo)
	}
	return st, nil
}

func (s *StatusService) List(ctx context.Context) ([]*models.Status, error) {
	return s.Store.Repos().Statuses.List(ctx)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// Create inserts a status row with column defaults for blank fields. An
// existing row is returned unchanged; created reports which case applied.
func (s *StatusService) Create(ctx context.Context, req models.CreateStatusRequest) (st *models.Status, created bool, err error) {
	req.GRNo = normalizeKey(req.GRNo)
	if err := validateStruct(req); err != nil {
		return nil, false, err
	}
	row := &models.Status{
		GRNo:           req.GRNo,
		ChallanStatus:  orDefault(req.ChallanStatus, models.Unassigned),
		PaymentStatus:  orDefault(req.PaymentStatus, models.PaymentNA),
		CrossingStatus: orDefault(req.CrossingStatus, models.Unassigned),
	}
	repos := s.Store.Repos()
	created, err = repos.Statuses.Create(ctx, row)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.audit(ctx, EntityStatus, row.GRNo, models.ActionCreate)
		return row, true, nil
	}
	st, err = repos.Statuses.Get(ctx, row.GRNo)
	return st, false, err
}

// Update changes only the fields present in the patch, creating the row
// with defaults when it does not exist.
func (s *StatusService) Update(ctx context.Context, grNo string, patch models.StatusPatch) (*models.Status, error) {
	grNo = normalizeKey(grNo)
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, invalid("", "at least one status field is required")
	}

	var out models.Status
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		cur, err := repos.Statuses.Get(ctx, grNo)
		if err != nil {
			return err
		}
		if cur == nil {
			cur = &models.Status{
				GRNo:           grNo,
				ChallanStatus:  models.Unassigned,
				PaymentStatus:  models.PaymentNA,
				CrossingStatus: models.Unassigned,
			}
		}
		out = patch.Apply(*cur)
		return repos.Statuses.Save(ctx, &out)
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityStatus, grNo, models.ActionUpdate)
	return &out, nil
}

func (s *StatusService) Delete(ctx context.Context, grNo string) (bool, error) {
	grNo = normalizeKey(grNo)
	found, err := s.Store.Repos().Statuses.Delete(ctx, grNo)
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityStatus, grNo, models.ActionDelete)
	}
	return found, nil
}
