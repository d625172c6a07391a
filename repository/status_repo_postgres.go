package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresStatusRepo struct {
	DB Querier
}

func NewPostgresStatusRepo(db Querier) *PostgresStatusRepo {
	return &PostgresStatusRepo{DB: db}
}

func scanStatus(row rowScanner) (*models.Status, error) {
	s := &models.Status{}
	if err := row.Scan(&s.GRNo, &s.ChallanStatus, &s.PaymentStatus, &s.CrossingStatus); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresStatusRepo) Create(ctx context.Context, s *models.Status) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO status (gr_no, challan_status, payment_status, crossing_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (gr_no) DO NOTHING
	`, s.GRNo, s.ChallanStatus, s.PaymentStatus, s.CrossingStatus)
	if err != nil {
		return false, fmt.Errorf("insert status %s: %w", s.GRNo, err)
	}
	return rowsAffected(res)
}

// Get locks the row for the rest of the transaction so that two documents
// cannot claim the same GR concurrently.
func (r *PostgresStatusRepo) Get(ctx context.Context, grNo string) (*models.Status, error) {
	s, err := scanStatus(r.DB.QueryRowContext(ctx, `
		SELECT gr_no, challan_status, payment_status, crossing_status
		FROM status WHERE gr_no = $1
		FOR UPDATE
	`, grNo))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get status %s: %w", grNo, err)
	}
	return s, nil
}

func (r *PostgresStatusRepo) List(ctx context.Context) ([]*models.Status, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT gr_no, challan_status, payment_status, crossing_status FROM status ORDER BY gr_no`)
	if err != nil {
		return nil, fmt.Errorf("list status: %w", err)
	}
	defer rows.Close()

	list := []*models.Status{}
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PostgresStatusRepo) Save(ctx context.Context, s *models.Status) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO status (gr_no, challan_status, payment_status, crossing_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (gr_no) DO UPDATE SET
			challan_status = EXCLUDED.challan_status,
			payment_status = EXCLUDED.payment_status,
			crossing_status = EXCLUDED.crossing_status
	`, s.GRNo, s.ChallanStatus, s.PaymentStatus, s.CrossingStatus)
	if err != nil {
		return fmt.Errorf("save status %s: %w", s.GRNo, err)
	}
	return nil
}

func (r *PostgresStatusRepo) Delete(ctx context.Context, grNo string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM status WHERE gr_no = $1`, grNo)
	if err != nil {
		return false, fmt.Errorf("delete status %s: %w", grNo, err)
	}
	return rowsAffected(res)
}
