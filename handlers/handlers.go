// Package handlers exposes the services over JSON HTTP.
package handlers

import (
	"github.com/sirupsen/logrus"

	"mptransport/services"
)

type Handlers struct {
	TransportRecords *TransportRecordHandler
	PDF              *PDFHandler
	Challans         *ChallanHandler
	Crossings        *CrossingHandler
	Customers        *CustomerHandler
	Transporters     *TransporterHandler
	Users            *UserHandler
	Payments         *PaymentHandler
	Statuses         *StatusHandler
	CompanyProfiles  *CompanyProfileHandler
	Activity         *ActivityHandler
}

func New(svc *services.Services, pdf *services.PDFService, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		TransportRecords: &TransportRecordHandler{Service: svc.TransportRecords, Logger: log},
		PDF:              &PDFHandler{Service: pdf, Logger: log},
		Challans:         &ChallanHandler{Service: svc.Challans, Logger: log},
		Crossings:        &CrossingHandler{Service: svc.Crossings, Logger: log},
		Customers:        &CustomerHandler{Service: svc.Customers, Logger: log},
		Transporters:     &TransporterHandler{Service: svc.Transporters, Logger: log},
		Users:            &UserHandler{Service: svc.Users, Logger: log},
		Payments:         &PaymentHandler{Service: svc.Payments, Logger: log},
		Statuses:         &StatusHandler{Service: svc.Statuses, Logger: log},
		CompanyProfiles:  &CompanyProfileHandler{Service: svc.CompanyProfiles, Logger: log},
		Activity:         &ActivityHandler{Service: svc.Activity, Logger: log},
	}
}
