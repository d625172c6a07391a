package services

import (
	"context"
	"strconv"
	"strings"

	"mptransport/models"
)

type CompanyProfileService struct {
	Deps
}

func (s *CompanyProfileService) Get(ctx context.Context) (*models.CompanyProfile, error) {
	p, err := s.Store.Repos().CompanyProfiles.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("company profile", "")
	}
	return p, nil
}

// Save stores p as the current letterhead.
func (s *CompanyProfileService) Save(ctx context.Context, p models.CompanyProfile) (*models.CompanyProfile, error) {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.GSTIN = strings.ToUpper(strings.TrimSpace(p.GSTIN))
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	p.ID = 0
	p.CreatedAt = s.now()
	if err := s.Store.Repos().CompanyProfiles.Save(ctx, &p); err != nil {
		return nil, err
	}
	s.audit(ctx, EntityCompanyProfile, strconv.FormatInt(p.ID, 10), models.ActionCreate)
	return &p, nil
}
