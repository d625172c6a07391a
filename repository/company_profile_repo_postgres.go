package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresCompanyProfileRepo struct {
	DB Querier
}

func NewPostgresCompanyProfileRepo(db Querier) *PostgresCompanyProfileRepo {
	return &PostgresCompanyProfileRepo{DB: db}
}

func (r *PostgresCompanyProfileRepo) Save(ctx context.Context, p *models.CompanyProfile) error {
	mobile := p.Mobile
	if mobile == nil {
		mobile = []models.MobileEntry{}
	}
	mobileJSON, err := json.Marshal(mobile)
	if err != nil {
		return err
	}

	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO company_profile
			(company_name, address, city, state, pincode, gstin, footnote, mobile, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, p.CompanyName, p.Address, p.City, p.State, p.Pincode, p.GSTIN, p.Footnote, mobileJSON, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert company profile: %w", err)
	}
	return nil
}

func (r *PostgresCompanyProfileRepo) Latest(ctx context.Context) (*models.CompanyProfile, error) {
	p := &models.CompanyProfile{}
	var address, city, state, pincode, gstin, footnote sql.NullString
	var mobileJSON []byte

	err := r.DB.QueryRowContext(ctx, `
		SELECT id, company_name, address, city, state, pincode, gstin, footnote, mobile, created_at
		FROM company_profile
		ORDER BY id DESC LIMIT 1
	`).Scan(&p.ID, &p.CompanyName, &address, &city, &state, &pincode, &gstin, &footnote, &mobileJSON, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	p.Address, p.City, p.State = address.String, city.String, state.String
	p.Pincode, p.GSTIN, p.Footnote = pincode.String, gstin.String, footnote.String

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &p.Mobile); err != nil {
			return nil, fmt.Errorf("decode company mobiles: %w", err)
		}
	}
	return p, nil
}
