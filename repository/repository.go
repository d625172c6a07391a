package repository

import (
	"context"
	"errors"

	"mptransport/sequence"
)

// ErrDuplicate is returned when an insert or update collides with an
// existing primary or unique key.
var ErrDuplicate = errors.New("duplicate key")

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier = sequence.Querier

// Repos is the set of repositories bound to one connection or transaction.
type Repos struct {
	TransportRecords TransportRecordRepository
	Challans         ChallanRepository
	Crossings        CrossingRepository
	Customers        CustomerRepository
	Transporters     TransporterRepository
	Users            UserRepository
	Payments         PaymentRepository
	Statuses         StatusRepository
	Sequences        SequenceRepository
	CompanyProfiles  CompanyProfileRepository
}

// Store hands out repositories. Every write that spans more than one
// table runs inside WithTx; when fn returns an error nothing is kept.
type Store interface {
	Repos() Repos
	WithTx(ctx context.Context, fn func(context.Context, Repos) error) error
}

// SequenceRepository mints identifiers. Inside WithTx the counter advance
// belongs to the transaction.
type SequenceRepository interface {
	Next(ctx context.Context, ns sequence.Namespace) (string, error)
}
