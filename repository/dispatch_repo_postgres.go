package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresChallanRepo struct {
	DB Querier
}

func NewPostgresChallanRepo(db Querier) *PostgresChallanRepo {
	return &PostgresChallanRepo{DB: db}
}

const challanColumns = `challan_no, date, truck_no, driver_no, from_location, destination, builty_no, created_at, updated_at`

func scanChallan(row rowScanner) (*models.Challan, error) {
	c := &models.Challan{}
	var builty string
	if err := row.Scan(&c.ChallanNo, &c.Date, &c.TruckNo, &c.DriverNo, &c.FromLocation,
		&c.Destination, &builty, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.BuiltyNo = models.SplitPipe(builty)
	return c, nil
}

func (r *PostgresChallanRepo) Create(ctx context.Context, c *models.Challan) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO challan (`+challanColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, c.ChallanNo, c.Date, c.TruckNo, c.DriverNo, c.FromLocation, c.Destination,
		c.BuiltyNo.Join(), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert challan %s: %w", c.ChallanNo, mapErr(err))
	}
	return nil
}

func (r *PostgresChallanRepo) Get(ctx context.Context, challanNo string) (*models.Challan, error) {
	c, err := scanChallan(r.DB.QueryRowContext(ctx,
		`SELECT `+challanColumns+` FROM challan WHERE challan_no = $1`, challanNo))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get challan %s: %w", challanNo, err)
	}
	return c, nil
}

func (r *PostgresChallanRepo) List(ctx context.Context) ([]*models.Challan, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+challanColumns+` FROM challan ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list challans: %w", err)
	}
	defer rows.Close()

	list := []*models.Challan{}
	for rows.Next() {
		c, err := scanChallan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PostgresChallanRepo) Update(ctx context.Context, c *models.Challan) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE challan
		SET date=$1, truck_no=$2, driver_no=$3, from_location=$4, destination=$5, builty_no=$6, updated_at=$7
		WHERE challan_no=$8
	`, c.Date, c.TruckNo, c.DriverNo, c.FromLocation, c.Destination, c.BuiltyNo.Join(), c.UpdatedAt, c.ChallanNo)
	if err != nil {
		return false, fmt.Errorf("update challan %s: %w", c.ChallanNo, err)
	}
	return rowsAffected(res)
}

func (r *PostgresChallanRepo) Delete(ctx context.Context, challanNo string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM challan WHERE challan_no = $1`, challanNo)
	if err != nil {
		return false, fmt.Errorf("delete challan %s: %w", challanNo, err)
	}
	return rowsAffected(res)
}

type PostgresCrossingRepo struct {
	DB Querier
}

func NewPostgresCrossingRepo(db Querier) *PostgresCrossingRepo {
	return &PostgresCrossingRepo{DB: db}
}

const crossingColumns = `cx_number, date, builty_no, created_at, updated_at`

func scanCrossing(row rowScanner) (*models.CrossingStatement, error) {
	c := &models.CrossingStatement{}
	var builty string
	if err := row.Scan(&c.CXNumber, &c.Date, &builty, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.BuiltyNo = models.SplitPipe(builty)
	return c, nil
}

func (r *PostgresCrossingRepo) Create(ctx context.Context, c *models.CrossingStatement) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO crossing_statement (`+crossingColumns+`)
		VALUES ($1,$2,$3,$4,$5)
	`, c.CXNumber, c.Date, c.BuiltyNo.Join(), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert crossing statement %s: %w", c.CXNumber, mapErr(err))
	}
	return nil
}

func (r *PostgresCrossingRepo) Get(ctx context.Context, cxNumber string) (*models.CrossingStatement, error) {
	c, err := scanCrossing(r.DB.QueryRowContext(ctx,
		`SELECT `+crossingColumns+` FROM crossing_statement WHERE cx_number = $1`, cxNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get crossing statement %s: %w", cxNumber, err)
	}
	return c, nil
}

func (r *PostgresCrossingRepo) List(ctx context.Context) ([]*models.CrossingStatement, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+crossingColumns+` FROM crossing_statement ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list crossing statements: %w", err)
	}
	defer rows.Close()

	list := []*models.CrossingStatement{}
	for rows.Next() {
		c, err := scanCrossing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crossing statement: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PostgresCrossingRepo) Update(ctx context.Context, c *models.CrossingStatement) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE crossing_statement SET date=$1, builty_no=$2, updated_at=$3 WHERE cx_number=$4`,
		c.Date, c.BuiltyNo.Join(), c.UpdatedAt, c.CXNumber)
	if err != nil {
		return false, fmt.Errorf("update crossing statement %s: %w", c.CXNumber, err)
	}
	return rowsAffected(res)
}

func (r *PostgresCrossingRepo) Delete(ctx context.Context, cxNumber string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM crossing_statement WHERE cx_number = $1`, cxNumber)
	if err != nil {
		return false, fmt.Errorf("delete crossing statement %s: %w", cxNumber, err)
	}
	return rowsAffected(res)
}
