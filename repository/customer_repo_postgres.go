package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresCustomerRepo struct {
	DB Querier
}

func NewPostgresCustomerRepo(db Querier) *PostgresCustomerRepo {
	return &PostgresCustomerRepo{DB: db}
}

const customerColumns = `customer_code, name, type, id_type, id_number, contact_number, created_at, updated_at`

func scanCustomer(row rowScanner) (*models.Customer, error) {
	c := &models.Customer{}
	var updated sql.NullTime
	if err := row.Scan(&c.CustomerCode, &c.Name, &c.Type, &c.IDType, &c.IDNumber,
		&c.ContactNumber, &c.CreatedAt, &updated); err != nil {
		return nil, err
	}
	if updated.Valid {
		c.UpdatedAt = &updated.Time
	}
	return c, nil
}

func (r *PostgresCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO customers (customer_code, name, type, id_type, id_number, contact_number, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, c.CustomerCode, c.Name, c.Type, c.IDType, c.IDNumber, c.ContactNumber, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer %s: %w", c.CustomerCode, mapErr(err))
	}
	return nil
}

func (r *PostgresCustomerRepo) one(ctx context.Context, query string, args ...any) (*models.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *PostgresCustomerRepo) many(ctx context.Context, query string, args ...any) ([]*models.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	list := []*models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PostgresCustomerRepo) FindByName(ctx context.Context, name string) (*models.Customer, error) {
	return r.one(ctx, `SELECT `+customerColumns+` FROM customers WHERE name ILIKE $1 ORDER BY name ASC LIMIT 1`, likePattern(name))
}

func (r *PostgresCustomerRepo) GetByName(ctx context.Context, name string) (*models.Customer, error) {
	return r.one(ctx, `SELECT `+customerColumns+` FROM customers WHERE name = $1 LIMIT 1`, name)
}

func (r *PostgresCustomerRepo) FindByIDNumber(ctx context.Context, idNumber string) (*models.Customer, error) {
	return r.one(ctx, `SELECT `+customerColumns+` FROM customers WHERE id_number = $1 LIMIT 1`, idNumber)
}

func (r *PostgresCustomerRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customer names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresCustomerRepo) List(ctx context.Context) ([]*models.Customer, error) {
	return r.many(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name ASC`)
}

func (r *PostgresCustomerRepo) Search(ctx context.Context, term string) ([]*models.Customer, error) {
	return r.many(ctx, `
		SELECT `+customerColumns+` FROM customers
		WHERE name ILIKE $1 OR customer_code ILIKE $1
		ORDER BY name ASC
	`, likePattern(term))
}

func (r *PostgresCustomerRepo) Update(ctx context.Context, c *models.Customer) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE customers
		SET name=$1, type=$2, id_type=$3, id_number=$4, contact_number=$5, updated_at=$6
		WHERE customer_code=$7
	`, c.Name, c.Type, c.IDType, c.IDNumber, c.ContactNumber, c.UpdatedAt, c.CustomerCode)
	if err != nil {
		return false, fmt.Errorf("update customer %s: %w", c.CustomerCode, mapErr(err))
	}
	return rowsAffected(res)
}

func (r *PostgresCustomerRepo) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("delete customer %s: %w", name, err)
	}
	return rowsAffected(res)
}
