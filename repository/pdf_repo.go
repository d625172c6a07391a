package repository

import (
	"context"

	"mptransport/models"
)

// PDFRepository gathers what a printed consignment note needs.
type PDFRepository struct {
	TransportRecords TransportRecordRepository
	CompanyProfiles  CompanyProfileRepository
}

func NewPDFRepository(store Store) *PDFRepository {
	repos := store.Repos()
	return &PDFRepository{
		TransportRecords: repos.TransportRecords,
		CompanyProfiles:  repos.CompanyProfiles,
	}
}

// GetTransportRecordForPDF returns nil when the GR does not exist.
func (r *PDFRepository) GetTransportRecordForPDF(ctx context.Context, grNo string) (*models.TransportRecord, error) {
	return r.TransportRecords.Get(ctx, grNo)
}

// GetCompanyProfileForPDF returns the current letterhead, or nil.
func (r *PDFRepository) GetCompanyProfileForPDF(ctx context.Context) (*models.CompanyProfile, error) {
	return r.CompanyProfiles.Latest(ctx)
}
