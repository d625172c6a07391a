package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mptransport/sequence"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	DB      *sql.DB
	Counter sequence.Counter
}

func NewPostgresStore(db *sql.DB, counter sequence.Counter) *PostgresStore {
	if counter == nil {
		counter = sequence.PostgresCounter{}
	}
	return &PostgresStore{DB: db, Counter: counter}
}

func (s *PostgresStore) Repos() Repos {
	return postgresRepos(s.DB, s.Counter)
}

func (s *PostgresStore) WithTx(ctx context.Context, fn func(context.Context, Repos) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, postgresRepos(tx, s.Counter)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func postgresRepos(q Querier, counter sequence.Counter) Repos {
	return Repos{
		TransportRecords: NewPostgresTransportRecordRepo(q),
		Challans:         NewPostgresChallanRepo(q),
		Crossings:        NewPostgresCrossingRepo(q),
		Customers:        NewPostgresCustomerRepo(q),
		Transporters:     NewPostgresTransporterRepo(q),
		Users:            NewPostgresUserRepo(q),
		Payments:         NewPostgresPaymentRepo(q),
		Statuses:         NewPostgresStatusRepo(q),
		Sequences:        &PostgresSequenceRepo{DB: q, Counter: counter},
		CompanyProfiles:  NewPostgresCompanyProfileRepo(q),
	}
}

type PostgresSequenceRepo struct {
	DB      Querier
	Counter sequence.Counter
}

func (r *PostgresSequenceRepo) Next(ctx context.Context, ns sequence.Namespace) (string, error) {
	return sequence.Mint(ctx, r.Counter, r.DB, ns)
}

// mapErr turns unique violations into ErrDuplicate.
func mapErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	}
	return err
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func likePattern(term string) string {
	return "%" + term + "%"
}
