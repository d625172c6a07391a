package services

import (
	"context"
	"errors"
	"strings"

	"mptransport/freight"
	"mptransport/models"
	"mptransport/repository"
)

// PaymentListLimit caps the payment list.
const PaymentListLimit = 100

type PaymentService struct {
	Deps
}

// settle prices the payment from its GR and writes the payment status.
// The invoice type and amount are never taken from the request.
func settle(ctx context.Context, repos repository.Repos, p *models.Payment) error {
	rec, err := repos.TransportRecords.Get(ctx, p.InvoiceNumber)
	if err != nil {
		return err
	}
	if rec == nil {
		return notFound("transport record", p.InvoiceNumber)
	}
	p.InvoiceType, p.InvoiceAmount = freight.Invoice(rec.ToPay, rec.Paid)

	paymentStatus, err := freight.PaymentStatus(p.AmountCollected, p.InvoiceAmount)
	if err != nil {
		return invalid("amountCollected", "%s", err.Error())
	}
	status, err := repos.Statuses.Get(ctx, p.InvoiceNumber)
	if err != nil {
		return err
	}
	if status == nil {
		fresh := models.NewStatus(p.InvoiceNumber)
		status = &fresh
	}
	status.PaymentStatus = paymentStatus
	return repos.Statuses.Save(ctx, status)
}

func (s *PaymentService) fromRequest(invoiceNumber string, req models.PaymentRequest) (*models.Payment, error) {
	req.InvoiceNumber = invoiceNumber
	req.ModeOfCollection = strings.TrimSpace(req.ModeOfCollection)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if invoiceNumber == "" {
		return nil, invalid("invoiceNumber", "is required")
	}
	return &models.Payment{
		InvoiceNumber:    invoiceNumber,
		AmountCollected:  req.AmountCollected.Decimal,
		ModeOfCollection: req.ModeOfCollection,
		Comments:         req.Comments,
	}, nil
}

func (s *PaymentService) Create(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	p, err := s.fromRequest(normalizeKey(req.InvoiceNumber), req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		existing, err := repos.Payments.Get(ctx, p.InvoiceNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return &ConflictError{Resource: "payment", Key: p.InvoiceNumber}
		}
		if err := settle(ctx, repos, p); err != nil {
			return err
		}
		return repos.Payments.Create(ctx, p)
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, &ConflictError{Resource: "payment", Key: p.InvoiceNumber}
	}
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityPayment, p.InvoiceNumber, models.ActionCreate)
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, invoiceNumber string) (*models.Payment, error) {
	invoiceNumber = normalizeKey(invoiceNumber)
	p, err := s.Store.Repos().Payments.Get(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("payment", invoiceNumber)
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	return s.Store.Repos().Payments.List(ctx, PaymentListLimit)
}

func (s *PaymentService) Update(ctx context.Context, invoiceNumber string, req models.PaymentRequest) (*models.Payment, error) {
	p, err := s.fromRequest(normalizeKey(invoiceNumber), req)
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = s.now()

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		existing, err := repos.Payments.Get(ctx, p.InvoiceNumber)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound("payment", p.InvoiceNumber)
		}
		p.CreatedAt = existing.CreatedAt
		if err := settle(ctx, repos, p); err != nil {
			return err
		}
		_, err = repos.Payments.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityPayment, p.InvoiceNumber, models.ActionUpdate)
	return p, nil
}

// Delete removes the payment and puts the GR back to Pending.
func (s *PaymentService) Delete(ctx context.Context, invoiceNumber string) (bool, error) {
	invoiceNumber = normalizeKey(invoiceNumber)
	var found bool
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		var err error
		found, err = repos.Payments.Delete(ctx, invoiceNumber)
		if err != nil || !found {
			return err
		}
		status, err := repos.Statuses.Get(ctx, invoiceNumber)
		if err != nil || status == nil {
			return err
		}
		status.PaymentStatus = models.PaymentPending
		return repos.Statuses.Save(ctx, status)
	})
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityPayment, invoiceNumber, models.ActionDelete)
	}
	return found, nil
}
