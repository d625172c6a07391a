package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresPaymentRepo struct {
	DB Querier
}

func NewPostgresPaymentRepo(db Querier) *PostgresPaymentRepo {
	return &PostgresPaymentRepo{DB: db}
}

const paymentColumns = `invoice_number, invoice_type, invoice_amount, amount_collected, mode_of_collection, comments, created_at, updated_at`

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	var comments sql.NullString
	if err := row.Scan(&p.InvoiceNumber, &p.InvoiceType, &p.InvoiceAmount, &p.AmountCollected,
		&p.ModeOfCollection, &comments, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if comments.Valid {
		p.Comments = &comments.String
	}
	return p, nil
}

func (r *PostgresPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO payment (`+paymentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, p.InvoiceNumber, p.InvoiceType, p.InvoiceAmount, p.AmountCollected,
		p.ModeOfCollection, p.Comments, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payment %s: %w", p.InvoiceNumber, mapErr(err))
	}
	return nil
}

func (r *PostgresPaymentRepo) Get(ctx context.Context, invoiceNumber string) (*models.Payment, error) {
	p, err := scanPayment(r.DB.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payment WHERE invoice_number = $1`, invoiceNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", invoiceNumber, err)
	}
	return p, nil
}

func (r *PostgresPaymentRepo) List(ctx context.Context, limit int) ([]*models.Payment, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payment ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	list := []*models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PostgresPaymentRepo) Update(ctx context.Context, p *models.Payment) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE payment
		SET invoice_type=$1, invoice_amount=$2, amount_collected=$3, mode_of_collection=$4, comments=$5, updated_at=$6
		WHERE invoice_number=$7
	`, p.InvoiceType, p.InvoiceAmount, p.AmountCollected, p.ModeOfCollection, p.Comments, p.UpdatedAt, p.InvoiceNumber)
	if err != nil {
		return false, fmt.Errorf("update payment %s: %w", p.InvoiceNumber, err)
	}
	return rowsAffected(res)
}

func (r *PostgresPaymentRepo) Delete(ctx context.Context, invoiceNumber string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payment WHERE invoice_number = $1`, invoiceNumber)
	if err != nil {
		return false, fmt.Errorf("delete payment %s: %w", invoiceNumber, err)
	}
	return rowsAffected(res)
}
