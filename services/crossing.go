package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/repository"
	"mptransport/sequence"
)

type CrossingService struct {
	Deps
}

func (s *CrossingService) fromRequest(req models.CrossingRequest) (*models.CrossingStatement, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	grs, err := normalizeGRs(req.BuiltyNo)
	if err != nil {
		return nil, err
	}
	return &models.CrossingStatement{Date: strings.TrimSpace(req.Date), BuiltyNo: grs}, nil
}

func (s *CrossingService) Create(ctx context.Context, req models.CrossingRequest) (*models.CrossingStatement, error) {
	c, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		no, err := repos.Sequences.Next(ctx, sequence.Crossing(now))
		if err != nil {
			return err
		}
		c.CXNumber = no
		if err := crossingKind.attach(ctx, repos, no, c.BuiltyNo); err != nil {
			return err
		}
		return repos.Crossings.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"module":    EntityCrossing,
		"cx_number": c.CXNumber,
		"grs":       len(c.BuiltyNo),
	}).Info("crossing statement created")
	s.audit(ctx, EntityCrossing, c.CXNumber, models.ActionCreate)
	return c, nil
}

func (s *CrossingService) Get(ctx context.Context, cxNumber string) (*models.CrossingStatement, error) {
	cxNumber = normalizeKey(cxNumber)
	c, err := s.Store.Repos().Crossings.Get(ctx, cxNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("crossing statement", cxNumber)
	}
	return c, nil
}

func (s *CrossingService) List(ctx context.Context) ([]*models.CrossingStatement, error) {
	return s.Store.Repos().Crossings.List(ctx)
}

func (s *CrossingService) Update(ctx context.Context, cxNumber string, req models.CrossingRequest) (*models.CrossingStatement, error) {
	cxNumber = normalizeKey(cxNumber)
	c, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	c.CXNumber = cxNumber
	c.UpdatedAt = s.now()

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		old, err := repos.Crossings.Get(ctx, cxNumber)
		if err != nil {
			return err
		}
		if old == nil {
			return notFound("crossing statement", cxNumber)
		}
		c.CreatedAt = old.CreatedAt
		if err := crossingKind.release(ctx, repos, cxNumber, dropped(old.BuiltyNo, c.BuiltyNo)); err != nil {
			return err
		}
		if err := crossingKind.attach(ctx, repos, cxNumber, c.BuiltyNo); err != nil {
			return err
		}
		_, err = repos.Crossings.Update(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityCrossing, cxNumber, models.ActionUpdate)
	return c, nil
}

func (s *CrossingService) Delete(ctx context.Context, cxNumber string) (bool, error) {
	cxNumber = normalizeKey(cxNumber)
	var found bool
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		old, err := repos.Crossings.Get(ctx, cxNumber)
		if err != nil || old == nil {
			return err
		}
		if err := crossingKind.release(ctx, repos, cxNumber, old.BuiltyNo); err != nil {
			return err
		}
		found, err = repos.Crossings.Delete(ctx, cxNumber)
		return err
	})
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityCrossing, cxNumber, models.ActionDelete)
	}
	return found, nil
}
