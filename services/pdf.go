package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/repository"
	"mptransport/utils"
)

// PDFRenderer turns an HTML document into PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// PDFStorage keeps generated files. Save returns the location recorded on
// the transport record.
type PDFStorage interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Remove(ctx context.Context, location string) error
}

type PDFResult struct {
	GRNo      string    `json:"gr_no"`
	File      string    `json:"file"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"pdf_created_at"`
}

type PDFService struct {
	Deps
	Renderer PDFRenderer
	Storage  PDFStorage
}

func NewPDFService(d Deps, renderer PDFRenderer, storage PDFStorage) *PDFService {
	return &PDFService{Deps: d.withDefaults(), Renderer: renderer, Storage: storage}
}

// Generate prints the consignment note of grNo, stores it and records
// where it went. A previously stored file is replaced.
func (s *PDFService) Generate(ctx context.Context, grNo string) (*PDFResult, error) {
	grNo = normalizeKey(grNo)
	log := s.Logger.WithFields(logrus.Fields{"module": "pdf", "gr_no": grNo})
	repo := repository.NewPDFRepository(s.Store)

	rec, err := repo.GetTransportRecordForPDF(ctx, grNo)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, notFound("transport record", grNo)
	}
	company, err := repo.GetCompanyProfileForPDF(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		log.Warn("no company profile, printing without letterhead")
	}

	html, err := utils.RenderTransportRecordHTML(company, rec)
	if err != nil {
		return nil, err
	}
	pdf, err := s.Renderer.Render(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("generate pdf %s: %w", grNo, err)
	}

	now := s.now()
	filename := fmt.Sprintf("transport_record_%s_%d.pdf", grNo, now.Unix())
	location, err := s.Storage.Save(ctx, filename, pdf)
	if err != nil {
		return nil, fmt.Errorf("store pdf %s: %w", grNo, err)
	}

	if err := s.Store.Repos().TransportRecords.UpdatePDF(ctx, grNo, location, now); err != nil {
		log.WithError(err).Warn("pdf_path not updated")
	} else if rec.PdfPath != nil && *rec.PdfPath != location {
		if err := s.Storage.Remove(ctx, *rec.PdfPath); err != nil {
			log.WithError(err).WithField("previous", *rec.PdfPath).Warn("previous pdf not removed")
		}
	}

	log.WithField("location", location).Info("pdf generated")
	s.audit(ctx, EntityTransportRecord, grNo, models.ActionUpdate)
	return &PDFResult{GRNo: grNo, File: filename, Location: location, CreatedAt: now}, nil
}
