// Package services holds the write rules of the back office: identifier
// minting, freight totals, natural-key uniqueness and the status
// bookkeeping that ties GRs to challans, crossing statements and payments.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/repository"
)

// Activity entity names.
const (
	EntityTransportRecord = "transport_record"
	EntityChallan         = "challan"
	EntityCrossing        = "crossing_statement"
	EntityCustomer        = "customer"
	EntityTransporter     = "transporter"
	EntityUser            = "user"
	EntityPayment         = "payment"
	EntityStatus          = "status"
	EntityCompanyProfile  = "company_profile"
)

type Deps struct {
	Store    repository.Store
	Activity repository.ActivityRepository
	Logger   logrus.FieldLogger
	Now      func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Activity == nil {
		d.Activity = repository.NopActivityRepo{}
	}
	if d.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		d.Logger = l
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d Deps) now() time.Time {
	return d.Now().UTC()
}

// audit records a committed write. Failures are logged and dropped.
func (d Deps) audit(ctx context.Context, entity, identifier, action string) {
	err := d.Activity.Record(ctx, &models.Activity{
		Entity:     entity,
		Identifier: identifier,
		Action:     action,
		At:         d.now(),
	})
	if err != nil {
		d.Logger.WithFields(logrus.Fields{
			"module":     entity,
			"identifier": identifier,
			"action":     action,
		}).WithError(err).Warn("activity not recorded")
	}
}

type Services struct {
	TransportRecords *TransportRecordService
	Challans         *ChallanService
	Crossings        *CrossingService
	Customers        *CustomerService
	Transporters     *TransporterService
	Users            *UserService
	Payments         *PaymentService
	Statuses         *StatusService
	CompanyProfiles  *CompanyProfileService
	Activity         *ActivityService
}

func New(d Deps) *Services {
	d = d.withDefaults()
	return &Services{
		TransportRecords: &TransportRecordService{d},
		Challans:         &ChallanService{d},
		Crossings:        &CrossingService{d},
		Customers:        &CustomerService{d},
		Transporters:     &TransporterService{d},
		Users:            &UserService{d},
		Payments:         &PaymentService{d},
		Statuses:         &StatusService{d},
		CompanyProfiles:  &CompanyProfileService{d},
		Activity:         &ActivityService{d},
	}
}

// normalizeKey trims and upper-cases document numbers and GRs.
func normalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
