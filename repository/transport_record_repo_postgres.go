package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mptransport/models"
)

type PostgresTransportRecordRepo struct {
	DB Querier
}

func NewPostgresTransportRecordRepo(db Querier) *PostgresTransportRecordRepo {
	return &PostgresTransportRecordRepo{DB: db}
}

const transportRecordColumns = `
	gr_no, date, eway_bill_no, from_location, consignor_code, consignor_gst, consignor_name,
	to_location, consignee_code, consignee_gst, consignee_name,
	article_no, article_length, said_to_contain, tax_free, weight_chargeable, actual_weight, hsn, amount,
	remarks, goods_type, value_declared, gst_will_be_paid_by, payment_type,
	to_pay, paid, motor_freight, hammali, other_charges,
	pdf_path, pdf_created_at, created_at, updated_at`

func scanTransportRecord(row rowScanner) (*models.TransportRecord, error) {
	rec := &models.TransportRecord{}
	var (
		date                                          sql.NullTime
		eway, from, cnorCode, cnorGST, cnorName       sql.NullString
		to, cneeCode, cneeGST, cneeName               sql.NullString
		artNo, contents, taxFree, chargeable, actual  sql.NullString
		hsn, amount, remarks, goods, declared, gstBy  sql.NullString
		pdfPath                                       sql.NullString
		pdfAt                                         sql.NullTime
	)
	err := row.Scan(
		&rec.GRNo, &date, &eway, &from, &cnorCode, &cnorGST, &cnorName,
		&to, &cneeCode, &cneeGST, &cneeName,
		&artNo, &rec.ArticleLength, &contents, &taxFree, &chargeable, &actual, &hsn, &amount,
		&remarks, &goods, &declared, &gstBy, &rec.PaymentType,
		&rec.ToPay, &rec.Paid, &rec.MotorFreight, &rec.Hammali, &rec.OtherCharges,
		&pdfPath, &pdfAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Date = date.Time
	rec.EwayBillNo = eway.String
	rec.FromLocation = from.String
	rec.ConsignorCode = cnorCode.String
	rec.ConsignorGST = cnorGST.String
	rec.ConsignorName = cnorName.String
	rec.ToLocation = to.String
	rec.ConsigneeCode = cneeCode.String
	rec.ConsigneeGST = cneeGST.String
	rec.ConsigneeName = cneeName.String
	rec.ArticleNo = artNo.String
	rec.SaidToContain = contents.String
	rec.TaxFree = taxFree.String
	rec.WeightChargeable = chargeable.String
	rec.ActualWeight = actual.String
	rec.HSN = hsn.String
	rec.Amount = amount.String
	rec.Remarks = remarks.String
	rec.GoodsType = goods.String
	rec.ValueDeclared = declared.String
	rec.GSTWillBePaidBy = gstBy.String
	if pdfPath.Valid {
		rec.PdfPath = &pdfPath.String
	}
	if pdfAt.Valid {
		rec.PdfCreatedAt = &pdfAt.Time
	}
	rec.Articles = rec.ArticleColumns.Articles()
	return rec, nil
}

func (r *PostgresTransportRecordRepo) Create(ctx context.Context, rec *models.TransportRecord) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO transport_records (
			gr_no, date, eway_bill_no, from_location, consignor_code, consignor_gst, consignor_name,
			to_location, consignee_code, consignee_gst, consignee_name,
			article_no, article_length, said_to_contain, tax_free, weight_chargeable, actual_weight, hsn, amount,
			remarks, goods_type, value_declared, gst_will_be_paid_by, payment_type,
			to_pay, paid, motor_freight, hammali, other_charges, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31)
	`,
		rec.GRNo, rec.Date, rec.EwayBillNo, rec.FromLocation, rec.ConsignorCode, rec.ConsignorGST, rec.ConsignorName,
		rec.ToLocation, rec.ConsigneeCode, rec.ConsigneeGST, rec.ConsigneeName,
		rec.ArticleNo, rec.ArticleLength, rec.SaidToContain, rec.TaxFree, rec.WeightChargeable, rec.ActualWeight, rec.HSN, rec.Amount,
		rec.Remarks, rec.GoodsType, rec.ValueDeclared, rec.GSTWillBePaidBy, rec.PaymentType,
		rec.ToPay, rec.Paid, rec.MotorFreight, rec.Hammali, rec.OtherCharges, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transport record %s: %w", rec.GRNo, mapErr(err))
	}
	return nil
}

func (r *PostgresTransportRecordRepo) Get(ctx context.Context, grNo string) (*models.TransportRecord, error) {
	rec, err := scanTransportRecord(r.DB.QueryRowContext(ctx,
		`SELECT `+transportRecordColumns+` FROM transport_records WHERE gr_no = $1`, grNo))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transport record %s: %w", grNo, err)
	}
	return rec, nil
}

func (r *PostgresTransportRecordRepo) List(ctx context.Context) ([]*models.TransportRecord, error) {
	return r.query(ctx, `SELECT `+transportRecordColumns+` FROM transport_records ORDER BY created_at DESC`)
}

func (r *PostgresTransportRecordRepo) History(ctx context.Context, consignor, consignee string, limit int) ([]*models.TransportRecord, error) {
	return r.query(ctx, `
		SELECT `+transportRecordColumns+`
		FROM transport_records
		WHERE consignor_name ILIKE $1 AND consignee_name ILIKE $2
		ORDER BY updated_at DESC, created_at DESC
		LIMIT $3
	`, likePattern(consignor), likePattern(consignee), limit)
}

func (r *PostgresTransportRecordRepo) query(ctx context.Context, query string, args ...any) ([]*models.TransportRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transport records: %w", err)
	}
	defer rows.Close()

	list := []*models.TransportRecord{}
	for rows.Next() {
		rec, err := scanTransportRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transport record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *PostgresTransportRecordRepo) Update(ctx context.Context, rec *models.TransportRecord) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE transport_records SET
			date=$1, eway_bill_no=$2, from_location=$3, consignor_code=$4, consignor_gst=$5, consignor_name=$6,
			to_location=$7, consignee_code=$8, consignee_gst=$9, consignee_name=$10,
			article_no=$11, article_length=$12, said_to_contain=$13, tax_free=$14, weight_chargeable=$15,
			actual_weight=$16, hsn=$17, amount=$18,
			remarks=$19, goods_type=$20, value_declared=$21, gst_will_be_paid_by=$22, payment_type=$23,
			to_pay=$24, paid=$25, motor_freight=$26, hammali=$27, other_charges=$28, updated_at=$29
		WHERE gr_no=$30
	`,
		rec.Date, rec.EwayBillNo, rec.FromLocation, rec.ConsignorCode, rec.ConsignorGST, rec.ConsignorName,
		rec.ToLocation, rec.ConsigneeCode, rec.ConsigneeGST, rec.ConsigneeName,
		rec.ArticleNo, rec.ArticleLength, rec.SaidToContain, rec.TaxFree, rec.WeightChargeable,
		rec.ActualWeight, rec.HSN, rec.Amount,
		rec.Remarks, rec.GoodsType, rec.ValueDeclared, rec.GSTWillBePaidBy, rec.PaymentType,
		rec.ToPay, rec.Paid, rec.MotorFreight, rec.Hammali, rec.OtherCharges, rec.UpdatedAt,
		rec.GRNo,
	)
	if err != nil {
		return false, fmt.Errorf("update transport record %s: %w", rec.GRNo, err)
	}
	return rowsAffected(res)
}

func (r *PostgresTransportRecordRepo) UpdatePDF(ctx context.Context, grNo, path string, at time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE transport_records SET pdf_path = $1, pdf_created_at = $2 WHERE gr_no = $3`,
		path, at, grNo)
	if err != nil {
		return fmt.Errorf("update pdf of %s: %w", grNo, err)
	}
	return nil
}

func (r *PostgresTransportRecordRepo) Delete(ctx context.Context, grNo string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transport_records WHERE gr_no = $1`, grNo)
	if err != nil {
		return false, fmt.Errorf("delete transport record %s: %w", grNo, err)
	}
	return rowsAffected(res)
}
