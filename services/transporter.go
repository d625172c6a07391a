package services

import (
	"context"
	"errors"
	"strings"

	"mptransport/models"
	"mptransport/repository"
)

type TransporterService struct {
	Deps
}

func normalizeVehicle(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

func (s *TransporterService) fromRequest(vehicle string, req models.TransporterRequest) (*models.Transporter, error) {
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	req.IDNumber = strings.TrimSpace(req.IDNumber)
	req.AadhaarNumber = strings.TrimSpace(req.AadhaarNumber)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.VehicleNumber = vehicle
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if vehicle == "" {
		return nil, invalid("vehicleNumber", "is required")
	}
	return &models.Transporter{
		OwnerName:         req.OwnerName,
		VehicleNumber:     vehicle,
		Type:              req.Type,
		IDType:            req.IDType,
		IDNumber:          req.IDNumber,
		AadhaarNumber:     optional(req.AadhaarNumber),
		ContactNumber:     req.ContactNumber,
		DeclarationUpload: optional(req.DeclarationUpload),
		Comments:          optional(req.Comments),
	}, nil
}

// Create rejects a vehicle number that is already registered.
func (s *TransporterService) Create(ctx context.Context, req models.TransporterRequest) (*models.Transporter, error) {
	t, err := s.fromRequest(normalizeVehicle(req.VehicleNumber), req)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = s.now()

	repo := s.Store.Repos().Transporters
	existing, err := repo.Get(ctx, t.VehicleNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Resource: "vehicle number", Key: t.VehicleNumber, Holder: "transporter " + existing.OwnerName}
	}
	if err := repo.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Resource: "vehicle number", Key: t.VehicleNumber}
		}
		return nil, err
	}
	s.audit(ctx, EntityTransporter, t.VehicleNumber, models.ActionCreate)
	return t, nil
}

// Search matches a vehicle number exactly or an owner name partially.
func (s *TransporterService) Search(ctx context.Context, term string) (*models.Transporter, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("search", "is required")
	}
	t, err := s.Store.Repos().Transporters.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if t == nil && normalizeVehicle(term) != term {
		t, err = s.Store.Repos().Transporters.Get(ctx, normalizeVehicle(term))
		if err != nil {
			return nil, err
		}
	}
	if t == nil {
		return nil, notFound("transporter", term)
	}
	return t, nil
}

func (s *TransporterService) VehicleNumbers(ctx context.Context) ([]string, error) {
	return s.Store.Repos().Transporters.ListVehicleNumbers(ctx)
}

func (s *TransporterService) Update(ctx context.Context, vehicleNumber string, req models.TransporterRequest) (*models.Transporter, error) {
	vehicleNumber = normalizeVehicle(vehicleNumber)
	t, err := s.fromRequest(vehicleNumber, req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	t.UpdatedAt = &now

	repo := s.Store.Repos().Transporters
	found, err := repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound("transporter", vehicleNumber)
	}
	updated, err := repo.Get(ctx, vehicleNumber)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityTransporter, vehicleNumber, models.ActionUpdate)
	return updated, nil
}

func (s *TransporterService) Delete(ctx context.Context, vehicleNumber string) (bool, error) {
	vehicleNumber = normalizeVehicle(vehicleNumber)
	found, err := s.Store.Repos().Transporters.Delete(ctx, vehicleNumber)
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityTransporter, vehicleNumber, models.ActionDelete)
	}
	return found, nil
}
