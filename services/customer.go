package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mptransport/models"
	"mptransport/repository"
	"mptransport/sequence"
)

type CustomerService struct {
	Deps
}

func trimCustomer(req models.CustomerRequest) models.CustomerRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	req.IDType = strings.TrimSpace(req.IDType)
	req.IDNumber = strings.TrimSpace(req.IDNumber)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	return req
}

func idNumberConflict(holder *models.Customer) error {
	return &ConflictError{
		Resource: "id number",
		Key:      holder.IDNumber,
		Holder:   fmt.Sprintf("customer %s (%s)", holder.Name, holder.CustomerCode),
	}
}

// Create rejects an id number already on file and mints the customer code
// from the first letter of the name.
func (s *CustomerService) Create(ctx context.Context, req models.CustomerRequest) (*models.Customer, error) {
	req = trimCustomer(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ns, err := sequence.Customer(req.Name)
	if err != nil {
		return nil, invalid("name", "is required")
	}

	c := &models.Customer{
		Name:          req.Name,
		Type:          req.Type,
		IDType:        req.IDType,
		IDNumber:      req.IDNumber,
		ContactNumber: req.ContactNumber,
		CreatedAt:     s.now(),
	}
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		holder, err := repos.Customers.FindByIDNumber(ctx, c.IDNumber)
		if err != nil {
			return err
		}
		if holder != nil {
			return idNumberConflict(holder)
		}
		code, err := repos.Sequences.Next(ctx, ns)
		if err != nil {
			return err
		}
		c.CustomerCode = code
		return repos.Customers.Create(ctx, c)
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, &ConflictError{Resource: "id number", Key: c.IDNumber}
	}
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityCustomer, c.CustomerCode, models.ActionCreate)
	return c, nil
}

// Lookup finds the first customer whose name contains name and adds the
// GSTIN printed on consignment notes.
func (s *CustomerService) Lookup(ctx context.Context, name string) (*models.CustomerLookup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	c, err := s.Store.Repos().Customers.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("customer", name)
	}
	return &models.CustomerLookup{Customer: *c, GSTIN: c.GSTIN()}, nil
}

func (s *CustomerService) Names(ctx context.Context) ([]string, error) {
	return s.Store.Repos().Customers.ListNames(ctx)
}

func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.Store.Repos().Customers.List(ctx)
}

func (s *CustomerService) Search(ctx context.Context, term string) ([]*models.Customer, error) {
	return s.Store.Repos().Customers.Search(ctx, strings.TrimSpace(term))
}

// Update resolves the customer by its current name; the customer code
// never changes.
func (s *CustomerService) Update(ctx context.Context, currentName string, req models.CustomerRequest) (*models.Customer, error) {
	currentName = strings.TrimSpace(currentName)
	req = trimCustomer(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *models.Customer
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		existing, err := repos.Customers.GetByName(ctx, currentName)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound("customer", currentName)
		}
		if req.IDNumber != existing.IDNumber {
			holder, err := repos.Customers.FindByIDNumber(ctx, req.IDNumber)
			if err != nil {
				return err
			}
			if holder != nil && holder.CustomerCode != existing.CustomerCode {
				return idNumberConflict(holder)
			}
		}
		now := s.now()
		next := *existing
		next.Name = req.Name
		next.Type = req.Type
		next.IDType = req.IDType
		next.IDNumber = req.IDNumber
		next.ContactNumber = req.ContactNumber
		next.UpdatedAt = &now
		if _, err := repos.Customers.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, &ConflictError{Resource: "id number", Key: req.IDNumber}
	}
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityCustomer, updated.CustomerCode, models.ActionUpdate)
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	found, err := s.Store.Repos().Customers.Delete(ctx, name)
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityCustomer, name, models.ActionDelete)
	}
	return found, nil
}
