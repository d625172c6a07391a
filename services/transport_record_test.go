package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/freight"
	"mptransport/models"
)

func TestCreateTransportRecordIssuesConsecutiveGRs(t *testing.T) {
	f := newFixture(t)

	for i := 1; i <= 12; i++ {
		rec := f.book(t)
		assert.Equal(t, fmt.Sprintf("GR%05d", i), rec.GRNo)
	}
}

func TestCreateTransportRecordOpensStatus(t *testing.T) {
	f := newFixture(t)
	rec := f.book(t)

	st, err := f.Statuses.Get(context.Background(), rec.GRNo)
	require.NoError(t, err)
	assert.Equal(t, models.Status{
		GRNo:           rec.GRNo,
		ChallanStatus:  "Book",
		PaymentStatus:  "Pending",
		CrossingStatus: "Book",
	}, *st)
}

func TestTransportRecordTotalsGoToOneBucket(t *testing.T) {
	tests := []struct {
		name        string
		paymentType string
		wantToPay   int64
		wantPaid    int64
	}{
		{"to pay", "TO PAY", 40, 0},
		{"paid", "PAID", 0, 40},
		{"lower case", "paid", 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.book(t, func(r *models.TransportRecordRequest) { r.PaymentType = tt.paymentType })

			requireDecimal(t, tt.wantToPay, rec.ToPay)
			requireDecimal(t, tt.wantPaid, rec.Paid)
			assert.True(t, rec.ToPay.IsZero() != rec.Paid.IsZero())
		})
	}
}

func TestUpdateTransportRecordRecomputesTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := f.book(t)

	req := bookingRequest()
	req.PaymentType = "PAID"
	req.Articles = req.Articles[:1]
	req.OtherCharges = charge(7)

	updated, err := f.TransportRecords.Update(ctx, rec.GRNo, req)
	require.NoError(t, err)
	assert.Equal(t, rec.GRNo, updated.GRNo)
	requireDecimal(t, 0, updated.ToPay)
	requireDecimal(t, 22, updated.Paid)
	assert.Equal(t, 1, updated.ArticleLength)
	assert.Equal(t, rec.CreatedAt, updated.CreatedAt)

	_, err = f.TransportRecords.Update(ctx, "GR09999", req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTransportRecordRepricesPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := f.book(t)
	_, err := f.Payments.Create(ctx, models.PaymentRequest{
		InvoiceNumber:    rec.GRNo,
		AmountCollected:  charge(40),
		ModeOfCollection: "Cash",
	})
	require.NoError(t, err)

	req := bookingRequest()
	req.Hammali = charge(500)
	updated, err := f.TransportRecords.Update(ctx, rec.GRNo, req)
	require.NoError(t, err)
	requireDecimal(t, 537, updated.ToPay)

	p, err := f.Payments.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	requireDecimal(t, 537, p.InvoiceAmount)
	requireDecimal(t, 40, p.AmountCollected)
	st, err := f.Statuses.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.Equal(t, freight.StatusPartial, st.PaymentStatus)
}

func TestUpdateTransportRecordBelowCollectedIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := f.book(t)
	_, err := f.Payments.Create(ctx, models.PaymentRequest{
		InvoiceNumber:    rec.GRNo,
		AmountCollected:  charge(40),
		ModeOfCollection: "Cash",
	})
	require.NoError(t, err)

	req := bookingRequest()
	req.Articles = req.Articles[:1]
	_, err = f.TransportRecords.Update(ctx, rec.GRNo, req)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)

	got, err := f.TransportRecords.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	requireDecimal(t, 40, got.ToPay)
	p, err := f.Payments.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	requireDecimal(t, 40, p.InvoiceAmount)
	st, err := f.Statuses.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.Equal(t, freight.StatusPaid, st.PaymentStatus)
}

func TestTransportRecordArticlesRoundTrip(t *testing.T) {
	f := newFixture(t)
	rec := f.book(t)

	got, err := f.TransportRecords.Get(context.Background(), rec.GRNo)
	require.NoError(t, err)

	assert.Equal(t, "2|1|5", got.ArticleNo)
	assert.Equal(t, "Cartons|Drum|Bags", got.SaidToContain)
	assert.Equal(t, "9999|3403|9999", got.HSN)
	assert.Equal(t, []string{"10", "20", "5"}, models.SplitPipe(got.Amount))

	want := bookingRequest().Articles
	require.Len(t, got.Articles, len(want))
	for i := range want {
		assert.Equal(t, want[i].SaidToContain, got.Articles[i].SaidToContain)
		assert.Equal(t, want[i].Amount, got.Articles[i].Amount)
	}
}

func TestTransportRecordAcceptsLegacyColumns(t *testing.T) {
	f := newFixture(t)
	rec := f.book(t, func(r *models.TransportRecordRequest) {
		r.Articles = nil
		r.ArticleLength = 2
		r.ArticleNo = "1|2"
		r.SaidToContain = "Box|Crate"
		r.Amount = "100|abc"
	})

	requireDecimal(t, 105, rec.ToPay)
	assert.Equal(t, "9999|9999", rec.HSN)
}

func TestTransportRecordValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TransportRecordRequest)
		field  string
	}{
		{"missing consignor", func(r *models.TransportRecordRequest) { r.Consignor = "" }, "consignor"},
		{"bad date", func(r *models.TransportRecordRequest) { r.Date = "2025/07/15" }, "date"},
		{"unknown payment type", func(r *models.TransportRecordRequest) { r.PaymentType = "CREDIT" }, "paymentType"},
		{"pipe in article", func(r *models.TransportRecordRequest) { r.Articles[0].SaidToContain = "a|b" }, "saidToContain"},
		{"negative charge", func(r *models.TransportRecordRequest) { r.Hammali = charge(-1) }, "hammali"},
		{"first negative charge wins", func(r *models.TransportRecordRequest) {
			r.OtherCharges = charge(-2)
			r.MotorFreight = charge(-1)
		}, "motorFreight"},
		{"negative article amount", func(r *models.TransportRecordRequest) { r.Articles[1].Amount = "-50" }, "amount"},
		{"too many articles", func(r *models.TransportRecordRequest) {
			r.Articles = make(models.Articles, models.MaxArticles+1)
		}, "articles"},
		{"huge legacy length", func(r *models.TransportRecordRequest) {
			r.Articles = nil
			r.ArticleLength = 1 << 30
		}, "articleLength"},
		{"legacy length without columns", func(r *models.TransportRecordRequest) {
			r.Articles = nil
			r.ArticleLength = 3
		}, "articleLength"},
		{"legacy column mismatch", func(r *models.TransportRecordRequest) {
			r.Articles = nil
			r.ArticleLength = 2
			r.Amount = "1|2|3"
		}, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := bookingRequest()
			tt.mutate(&req)

			_, err := f.TransportRecords.Create(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)

			list, err := f.TransportRecords.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestTransportRecordDefaultsGST(t *testing.T) {
	f := newFixture(t)
	rec := f.book(t, func(r *models.TransportRecordRequest) { r.ConsigneeGst = "23ABCDE1234F1Z5" })

	assert.Equal(t, models.DefaultGST, rec.ConsignorGST)
	assert.Equal(t, "23ABCDE1234F1Z5", rec.ConsigneeGST)
}

func TestHistoryMatchesPartiesCaseInsensitively(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 7; i++ {
		f.book(t)
	}
	f.book(t, func(r *models.TransportRecordRequest) { r.Consignee = "Other Party" })

	list, err := f.TransportRecords.History(context.Background(), "acme", "BHARAT")
	require.NoError(t, err)
	assert.Len(t, list, HistoryLimit)
	assert.Equal(t, "GR00007", list[0].GRNo)
}

func TestDeleteTransportRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := f.book(t)

	found, err := f.TransportRecords.Delete(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = f.Statuses.Get(ctx, rec.GRNo)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err = f.TransportRecords.Delete(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvoiceFollowsBucket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	toPay := f.book(t)
	paid := f.book(t, func(r *models.TransportRecordRequest) { r.PaymentType = "PAID" })

	inv, err := f.TransportRecords.Invoice(ctx, toPay.GRNo)
	require.NoError(t, err)
	assert.Equal(t, "To Pay", inv.InvoiceType)
	requireDecimal(t, 40, inv.InvoiceAmount)

	inv, err = f.TransportRecords.Invoice(ctx, paid.GRNo)
	require.NoError(t, err)
	assert.Equal(t, "Paid", inv.InvoiceType)
	requireDecimal(t, 40, inv.InvoiceAmount)
}

func TestWritesAreAudited(t *testing.T) {
	f := newFixture(t)
	rec := f.book(t)
	_, err := f.TransportRecords.Delete(context.Background(), rec.GRNo)
	require.NoError(t, err)

	require.Len(t, f.activity.entries, 2)
	assert.Equal(t, models.ActionCreate, f.activity.entries[0].Action)
	assert.Equal(t, models.ActionDelete, f.activity.entries[1].Action)
	assert.Equal(t, EntityTransportRecord, f.activity.entries[1].Entity)
	assert.Equal(t, rec.GRNo, f.activity.entries[1].Identifier)
}
