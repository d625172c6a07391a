package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/repository"
	"mptransport/sequence"
)

type ChallanService struct {
	Deps
}

func (s *ChallanService) fromRequest(req models.ChallanRequest) (*models.Challan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	grs, err := normalizeGRs(req.BuiltyNo)
	if err != nil {
		return nil, err
	}
	return &models.Challan{
		Date:         strings.TrimSpace(req.Date),
		TruckNo:      normalizeVehicle(req.TruckNo),
		DriverNo:     strings.TrimSpace(req.DriverNo),
		FromLocation: strings.TrimSpace(req.From),
		Destination:  strings.TrimSpace(req.Destination),
		BuiltyNo:     grs,
	}, nil
}

// Create mints the challan number and claims every listed GR.
func (s *ChallanService) Create(ctx context.Context, req models.ChallanRequest) (*models.Challan, error) {
	c, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		no, err := repos.Sequences.Next(ctx, sequence.Challan(now))
		if err != nil {
			return err
		}
		c.ChallanNo = no
		if err := challanKind.attach(ctx, repos, no, c.BuiltyNo); err != nil {
			return err
		}
		return repos.Challans.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"module":     EntityChallan,
		"challan_no": c.ChallanNo,
		"grs":        len(c.BuiltyNo),
	}).Info("challan created")
	s.audit(ctx, EntityChallan, c.ChallanNo, models.ActionCreate)
	return c, nil
}

func (s *ChallanService) Get(ctx context.Context, challanNo string) (*models.Challan, error) {
	challanNo = normalizeKey(challanNo)
	c, err := s.Store.Repos().Challans.Get(ctx, challanNo)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("challan", challanNo)
	}
	return c, nil
}

func (s *ChallanService) List(ctx context.Context) ([]*models.Challan, error) {
	return s.Store.Repos().Challans.List(ctx)
}

// Update replaces the header and GR list. GRs dropped from the list go
// back to Book.
func (s *ChallanService) Update(ctx context.Context, challanNo string, req models.ChallanRequest) (*models.Challan, error) {
	challanNo = normalizeKey(challanNo)
	c, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	c.ChallanNo = challanNo
	c.UpdatedAt = s.now()

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		old, err := repos.Challans.Get(ctx, challanNo)
		if err != nil {
			return err
		}
		if old == nil {
			return notFound("challan", challanNo)
		}
		c.CreatedAt = old.CreatedAt
		if err := challanKind.release(ctx, repos, challanNo, dropped(old.BuiltyNo, c.BuiltyNo)); err != nil {
			return err
		}
		if err := challanKind.attach(ctx, repos, challanNo, c.BuiltyNo); err != nil {
			return err
		}
		_, err = repos.Challans.Update(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityChallan, challanNo, models.ActionUpdate)
	return c, nil
}

// Delete removes the challan and frees its GRs.
func (s *ChallanService) Delete(ctx context.Context, challanNo string) (bool, error) {
	challanNo = normalizeKey(challanNo)
	var found bool
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		old, err := repos.Challans.Get(ctx, challanNo)
		if err != nil || old == nil {
			return err
		}
		if err := challanKind.release(ctx, repos, challanNo, old.BuiltyNo); err != nil {
			return err
		}
		found, err = repos.Challans.Delete(ctx, challanNo)
		return err
	})
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityChallan, challanNo, models.ActionDelete)
	}
	return found, nil
}
