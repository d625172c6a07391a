package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"mptransport/models"
	"mptransport/repository/memory"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *clock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recordedActivity struct {
	mu      sync.Mutex
	entries []models.Activity
}

func (r *recordedActivity) Record(_ context.Context, a *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *a)
	return nil
}

func (r *recordedActivity) List(context.Context, string, string, int) ([]*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Activity, len(r.entries))
	for i := range r.entries {
		out[i] = &r.entries[i]
	}
	return out, nil
}

type fixture struct {
	*Services
	store    *memory.Store
	clock    *clock
	activity *recordedActivity
	logs     *test.Hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	f := &fixture{
		store:    memory.NewStore(),
		clock:    &clock{now: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)},
		activity: &recordedActivity{},
		logs:     hook,
	}
	f.Services = New(Deps{
		Store:    f.store,
		Activity: f.activity,
		Logger:   logger,
		Now:      f.clock.Now,
	})
	return f
}

func charge(v int64) models.Charge {
	return models.NewCharge(decimal.NewFromInt(v))
}

func bookingRequest() models.TransportRecordRequest {
	return models.TransportRecordRequest{
		Date:         "15-07-2025",
		FromLocation: "Indore",
		Consignor:    "Acme Traders",
		ToLocation:   "Bhopal",
		Consignee:    "Bharat Stores",
		PaymentType:  "TO PAY",
		Articles: models.Articles{
			{NoOfArticles: "2", SaidToContain: "Cartons", ActualWeight: "40", Amount: "10"},
			{NoOfArticles: "1", SaidToContain: "Drum", ActualWeight: "25", Amount: "20", HSN: "3403"},
			{NoOfArticles: "5", SaidToContain: "Bags", ActualWeight: "50", Amount: "5"},
		},
		MotorFreight: charge(2),
		Hammali:      charge(3),
	}
}

func (f *fixture) book(t *testing.T, mutate ...func(*models.TransportRecordRequest)) *models.TransportRecord {
	t.Helper()
	req := bookingRequest()
	for _, m := range mutate {
		m(&req)
	}
	rec, err := f.TransportRecords.Create(context.Background(), req)
	require.NoError(t, err)
	return rec
}

func requireDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got)
}
