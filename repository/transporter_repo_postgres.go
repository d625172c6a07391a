package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresTransporterRepo struct {
	DB Querier
}

func NewPostgresTransporterRepo(db Querier) *PostgresTransporterRepo {
	return &PostgresTransporterRepo{DB: db}
}

const transporterColumns = `owner_name, vehicle_number, type, id_type, id_number, aadhaar_number,
	contact_number, declaration_upload, comments, created_at, updated_at`

func scanTransporter(row rowScanner) (*models.Transporter, error) {
	t := &models.Transporter{}
	var aadhaar, declaration, comments sql.NullString
	var updated sql.NullTime
	if err := row.Scan(&t.OwnerName, &t.VehicleNumber, &t.Type, &t.IDType, &t.IDNumber, &aadhaar,
		&t.ContactNumber, &declaration, &comments, &t.CreatedAt, &updated); err != nil {
		return nil, err
	}
	if aadhaar.Valid {
		t.AadhaarNumber = &aadhaar.String
	}
	if declaration.Valid {
		t.DeclarationUpload = &declaration.String
	}
	if comments.Valid {
		t.Comments = &comments.String
	}
	if updated.Valid {
		t.UpdatedAt = &updated.Time
	}
	return t, nil
}

func (r *PostgresTransporterRepo) Create(ctx context.Context, t *models.Transporter) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO transporters (
			owner_name, vehicle_number, type, id_type, id_number, aadhaar_number,
			contact_number, declaration_upload, comments, created_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, t.OwnerName, t.VehicleNumber, t.Type, t.IDType, t.IDNumber, t.AadhaarNumber,
		t.ContactNumber, t.DeclarationUpload, t.Comments, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transporter %s: %w", t.VehicleNumber, mapErr(err))
	}
	return nil
}

func (r *PostgresTransporterRepo) one(ctx context.Context, query string, args ...any) (*models.Transporter, error) {
	t, err := scanTransporter(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transporter: %w", err)
	}
	return t, nil
}

func (r *PostgresTransporterRepo) Get(ctx context.Context, vehicleNumber string) (*models.Transporter, error) {
	return r.one(ctx, `SELECT `+transporterColumns+` FROM transporters WHERE vehicle_number = $1`, vehicleNumber)
}

func (r *PostgresTransporterRepo) Search(ctx context.Context, term string) (*models.Transporter, error) {
	return r.one(ctx, `
		SELECT `+transporterColumns+` FROM transporters
		WHERE vehicle_number = $1 OR owner_name ILIKE $2
		ORDER BY (vehicle_number = $1) DESC, owner_name ASC
		LIMIT 1
	`, term, likePattern(term))
}

func (r *PostgresTransporterRepo) ListVehicleNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT vehicle_number FROM transporters ORDER BY vehicle_number ASC`)
	if err != nil {
		return nil, fmt.Errorf("list vehicle numbers: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresTransporterRepo) Update(ctx context.Context, t *models.Transporter) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE transporters
		SET owner_name=$1, type=$2, id_type=$3, id_number=$4, aadhaar_number=$5,
			contact_number=$6, declaration_upload=$7, comments=$8, updated_at=$9
		WHERE vehicle_number=$10
	`, t.OwnerName, t.Type, t.IDType, t.IDNumber, t.AadhaarNumber,
		t.ContactNumber, t.DeclarationUpload, t.Comments, t.UpdatedAt, t.VehicleNumber)
	if err != nil {
		return false, fmt.Errorf("update transporter %s: %w", t.VehicleNumber, err)
	}
	return rowsAffected(res)
}

func (r *PostgresTransporterRepo) Delete(ctx context.Context, vehicleNumber string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transporters WHERE vehicle_number = $1`, vehicleNumber)
	if err != nil {
		return false, fmt.Errorf("delete transporter %s: %w", vehicleNumber, err)
	}
	return rowsAffected(res)
}
