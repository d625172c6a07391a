package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"mptransport/freight"
	"mptransport/models"
	"mptransport/repository"
	"mptransport/sequence"
)

// HistoryLimit caps the consignor/consignee history lookup.
const HistoryLimit = 5

var dateLayouts = []string{models.DateLayout, "2006-01-02"}

type TransportRecordService struct {
	Deps
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("date", "must be in DD-MM-YYYY format")
}

func articleColumns(req models.TransportRecordRequest) (models.ArticleColumns, error) {
	var cols models.ArticleColumns
	var err error
	if len(req.Articles) > 0 {
		cols, err = req.Articles.Columns()
	} else {
		var arts models.Articles
		arts, err = req.LegacyColumns().Decode()
		if err == nil {
			cols, err = arts.Columns()
		}
	}
	var fieldErr *models.ArticleFieldError
	if errors.As(err, &fieldErr) {
		return cols, invalid(fieldErr.Field, "%s", fieldErr.Reason)
	}
	if err != nil {
		return cols, err
	}
	for i, v := range models.SplitPipe(cols.Amount) {
		if freight.ParseAmount(v).IsNegative() {
			return cols, invalid("amount", "article %d must not be negative", i+1)
		}
	}
	return cols, nil
}

func gstOrDefault(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return models.DefaultGST
	}
	return s
}

// build turns a request into a record with its totals allocated. The GR
// number and timestamps are left to the caller.
func (s *TransportRecordService) build(req models.TransportRecordRequest) (*models.TransportRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	pt, err := freight.ParsePaymentType(req.PaymentType)
	if err != nil {
		return nil, invalid("paymentType", "must be TO PAY or PAID")
	}
	cols, err := articleColumns(req)
	if err != nil {
		return nil, err
	}
	charges := []struct {
		field string
		value decimal.Decimal
	}{
		{"motorFreight", req.MotorFreight.Decimal},
		{"hammali", req.Hammali.Decimal},
		{"otherCharges", req.OtherCharges.Decimal},
	}
	for _, c := range charges {
		if c.value.IsNegative() {
			return nil, invalid(c.field, "must not be negative")
		}
	}

	total := freight.Total(cols.Amount, req.MotorFreight.Decimal, req.Hammali.Decimal, req.OtherCharges.Decimal)
	toPay, paid, err := freight.Allocate(total, pt)
	if err != nil {
		return nil, invalid("paymentType", "%s", err.Error())
	}

	return &models.TransportRecord{
		Date:            date,
		EwayBillNo:      strings.TrimSpace(req.EwayBillNo),
		FromLocation:    strings.TrimSpace(req.FromLocation),
		ConsignorCode:   strings.TrimSpace(req.ConsignorCode),
		ConsignorGST:    gstOrDefault(req.ConsignorGst),
		ConsignorName:   strings.TrimSpace(req.Consignor),
		ToLocation:      strings.TrimSpace(req.ToLocation),
		ConsigneeCode:   strings.TrimSpace(req.ConsigneeCode),
		ConsigneeGST:    gstOrDefault(req.ConsigneeGst),
		ConsigneeName:   strings.TrimSpace(req.Consignee),
		ArticleColumns:  cols,
		Remarks:         req.Remarks,
		GoodsType:       strings.TrimSpace(req.GoodsType),
		ValueDeclared:   strings.TrimSpace(req.ValueDeclared),
		GSTWillBePaidBy: strings.TrimSpace(req.GstWillBePaidBy),
		PaymentType:     string(pt),
		ToPay:           toPay,
		Paid:            paid,
		MotorFreight:    req.MotorFreight.Decimal,
		Hammali:         req.Hammali.Decimal,
		OtherCharges:    req.OtherCharges.Decimal,
	}, nil
}

// Create mints a GR number, stores the record and opens its status row
// in one transaction.
func (s *TransportRecordService) Create(ctx context.Context, req models.TransportRecordRequest) (*models.TransportRecord, error) {
	rec, err := s.build(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	rec.CreatedAt, rec.UpdatedAt = now, now

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		grNo, err := repos.Sequences.Next(ctx, sequence.GR())
		if err != nil {
			return err
		}
		rec.GRNo = grNo
		if err := repos.TransportRecords.Create(ctx, rec); err != nil {
			return err
		}
		status := models.NewStatus(grNo)
		return repos.Statuses.Save(ctx, &status)
	})
	if err != nil {
		return nil, err
	}

	rec.Articles = rec.ArticleColumns.Articles()
	s.Logger.WithFields(logrus.Fields{"module": EntityTransportRecord, "gr_no": rec.GRNo}).Info("transport record created")
	s.audit(ctx, EntityTransportRecord, rec.GRNo, models.ActionCreate)
	return rec, nil
}

func (s *TransportRecordService) Get(ctx context.Context, grNo string) (*models.TransportRecord, error) {
	grNo = normalizeKey(grNo)
	rec, err := s.Store.Repos().TransportRecords.Get(ctx, grNo)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, notFound("transport record", grNo)
	}
	return rec, nil
}

func (s *TransportRecordService) List(ctx context.Context) ([]*models.TransportRecord, error) {
	return s.Store.Repos().TransportRecords.List(ctx)
}

// History returns the latest records between a consignor and consignee,
// used to prefill the booking form.
func (s *TransportRecordService) History(ctx context.Context, consignor, consignee string) ([]*models.TransportRecord, error) {
	consignor, consignee = strings.TrimSpace(consignor), strings.TrimSpace(consignee)
	if consignor == "" && consignee == "" {
		return nil, invalid("consignor", "or consignee is required")
	}
	return s.Store.Repos().TransportRecords.History(ctx, consignor, consignee, HistoryLimit)
}

// Update recomputes totals from the submitted articles and surcharges and
// reprices an existing payment against them. The GR number never changes.
func (s *TransportRecordService) Update(ctx context.Context, grNo string, req models.TransportRecordRequest) (*models.TransportRecord, error) {
	grNo = normalizeKey(grNo)
	rec, err := s.build(req)
	if err != nil {
		return nil, err
	}
	rec.GRNo = grNo
	rec.UpdatedAt = s.now()

	var updated *models.TransportRecord
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		found, err := repos.TransportRecords.Update(ctx, rec)
		if err != nil {
			return err
		}
		if !found {
			return notFound("transport record", grNo)
		}
		p, err := repos.Payments.Get(ctx, grNo)
		if err != nil {
			return err
		}
		if p != nil {
			if err := settle(ctx, repos, p); err != nil {
				if errors.Is(err, ErrValidation) {
					return invalid("amount", "total is below the %s already collected", p.AmountCollected.String())
				}
				return err
			}
			p.UpdatedAt = rec.UpdatedAt
			if _, err := repos.Payments.Update(ctx, p); err != nil {
				return err
			}
		}
		updated, err = repos.TransportRecords.Get(ctx, grNo)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, EntityTransportRecord, grNo, models.ActionUpdate)
	return updated, nil
}

// Delete refuses GRs still listed on a challan or crossing statement and
// removes the status row and payment together with the record.
func (s *TransportRecordService) Delete(ctx context.Context, grNo string) (bool, error) {
	grNo = normalizeKey(grNo)
	var found bool
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repos) error {
		status, err := repos.Statuses.Get(ctx, grNo)
		if err != nil {
			return err
		}
		if status != nil {
			if status.ChallanStatus != models.Unassigned && status.ChallanStatus != "" {
				return &ConflictError{Resource: "GR", Key: grNo, Holder: "challan " + status.ChallanStatus}
			}
			if status.CrossingStatus != models.Unassigned && status.CrossingStatus != "" {
				return &ConflictError{Resource: "GR", Key: grNo, Holder: "crossing statement " + status.CrossingStatus}
			}
		}
		found, err = repos.TransportRecords.Delete(ctx, grNo)
		if err != nil || !found {
			return err
		}
		if _, err := repos.Statuses.Delete(ctx, grNo); err != nil {
			return err
		}
		_, err = repos.Payments.Delete(ctx, grNo)
		return err
	})
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityTransportRecord, grNo, models.ActionDelete)
	}
	return found, nil
}

// Invoice derives the invoice a payment is collected against.
func (s *TransportRecordService) Invoice(ctx context.Context, grNo string) (*models.Invoice, error) {
	rec, err := s.Get(ctx, grNo)
	if err != nil {
		return nil, err
	}
	invoiceType, amount := freight.Invoice(rec.ToPay, rec.Paid)
	return &models.Invoice{
		InvoiceNumber: rec.GRNo,
		InvoiceType:   invoiceType,
		InvoiceAmount: amount,
		Consignor:     rec.ConsignorName,
		Consignee:     rec.ConsigneeName,
		Date:          rec.Date,
		CreatedAt:     rec.CreatedAt,
	}, nil
}
