package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/models"
)

func challanRequest(grs ...string) models.ChallanRequest {
	return models.ChallanRequest{
		Date:        "16-07-2025",
		TruckNo:     "mp09 ab 1234",
		DriverNo:    "9876543210",
		From:        "Indore",
		Destination: "Bhopal",
		BuiltyNo:    grs,
	}
}

func (f *fixture) requireStatus(t *testing.T, grNo, challan, crossing string) {
	t.Helper()
	st, err := f.Statuses.Get(context.Background(), grNo)
	require.NoError(t, err)
	assert.Equal(t, challan, st.ChallanStatus, "challan status of %s", grNo)
	assert.Equal(t, crossing, st.CrossingStatus, "crossing status of %s", grNo)
}

func TestChallanClaimsGRs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr1, gr2 := f.book(t), f.book(t)

	c, err := f.Challans.Create(ctx, challanRequest(gr1.GRNo, gr2.GRNo))
	require.NoError(t, err)
	assert.Equal(t, "25CH00001", c.ChallanNo)
	assert.Equal(t, models.GRList{"GR00001", "GR00002"}, c.BuiltyNo)

	f.requireStatus(t, gr1.GRNo, c.ChallanNo, models.Unassigned)
	f.requireStatus(t, gr2.GRNo, c.ChallanNo, models.Unassigned)
}

func TestSecondChallanCannotClaimAssignedGR(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr1, gr2 := f.book(t), f.book(t)

	first, err := f.Challans.Create(ctx, challanRequest(gr1.GRNo))
	require.NoError(t, err)

	_, err = f.Challans.Create(ctx, challanRequest(gr2.GRNo, gr1.GRNo))
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), gr1.GRNo)
	assert.Contains(t, err.Error(), first.ChallanNo)

	// nothing from the failed attempt is kept
	f.requireStatus(t, gr2.GRNo, models.Unassigned, models.Unassigned)
	list, err := f.Challans.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	next, err := f.Challans.Create(ctx, challanRequest(gr2.GRNo))
	require.NoError(t, err)
	assert.Equal(t, "25CH00002", next.ChallanNo)
}

func TestChallanRejectsBadGRLists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr := f.book(t)

	tests := []struct {
		name string
		grs  []string
	}{
		{"empty", nil},
		{"unknown GR", []string{"GR00042"}},
		{"repeated GR", []string{gr.GRNo, " gr00001 "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Challans.Create(ctx, challanRequest(tt.grs...))
			require.ErrorIs(t, err, ErrValidation)
		})
	}
	f.requireStatus(t, gr.GRNo, models.Unassigned, models.Unassigned)
}

func TestChallanNumbersFollowTheYear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr1, gr2 := f.book(t), f.book(t)

	c, err := f.Challans.Create(ctx, challanRequest(gr1.GRNo))
	require.NoError(t, err)
	assert.Equal(t, "25CH00001", c.ChallanNo)

	f.clock.set(time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC))
	c, err = f.Challans.Create(ctx, challanRequest(gr2.GRNo))
	require.NoError(t, err)
	assert.Equal(t, "26CH00001", c.ChallanNo)
}

func TestUpdateChallanReleasesDroppedGRs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr1, gr2, gr3 := f.book(t), f.book(t), f.book(t)

	c, err := f.Challans.Create(ctx, challanRequest(gr1.GRNo, gr2.GRNo))
	require.NoError(t, err)

	updated, err := f.Challans.Update(ctx, c.ChallanNo, challanRequest(gr2.GRNo, gr3.GRNo))
	require.NoError(t, err)
	assert.Equal(t, models.GRList{gr2.GRNo, gr3.GRNo}, updated.BuiltyNo)
	assert.Equal(t, "MP09AB1234", updated.TruckNo)

	f.requireStatus(t, gr1.GRNo, models.Unassigned, models.Unassigned)
	f.requireStatus(t, gr2.GRNo, c.ChallanNo, models.Unassigned)
	f.requireStatus(t, gr3.GRNo, c.ChallanNo, models.Unassigned)

	_, err = f.Challans.Update(ctx, "25CH00099", challanRequest(gr1.GRNo))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteChallanFreesGRs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr := f.book(t)

	c, err := f.Challans.Create(ctx, challanRequest(gr.GRNo))
	require.NoError(t, err)

	_, err = f.TransportRecords.Delete(ctx, gr.GRNo)
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), c.ChallanNo)

	found, err := f.Challans.Delete(ctx, c.ChallanNo)
	require.NoError(t, err)
	assert.True(t, found)
	f.requireStatus(t, gr.GRNo, models.Unassigned, models.Unassigned)

	found, err = f.TransportRecords.Delete(ctx, gr.GRNo)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = f.Challans.Delete(ctx, c.ChallanNo)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCrossingIsIndependentOfChallan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gr := f.book(t)

	c, err := f.Challans.Create(ctx, challanRequest(gr.GRNo))
	require.NoError(t, err)
	cx, err := f.Crossings.Create(ctx, models.CrossingRequest{Date: "17-07-2025", BuiltyNo: models.GRList{gr.GRNo}})
	require.NoError(t, err)
	assert.Equal(t, "25CX00001", cx.CXNumber)
	f.requireStatus(t, gr.GRNo, c.ChallanNo, cx.CXNumber)

	_, err = f.Crossings.Create(ctx, models.CrossingRequest{Date: "17-07-2025", BuiltyNo: models.GRList{gr.GRNo}})
	require.ErrorIs(t, err, ErrConflict)

	found, err := f.Crossings.Delete(ctx, cx.CXNumber)
	require.NoError(t, err)
	assert.True(t, found)
	f.requireStatus(t, gr.GRNo, c.ChallanNo, models.Unassigned)
}

func TestDroppedGRs(t *testing.T) {
	got := dropped(models.GRList{"GR00001", "GR00002", "GR00003"}, models.GRList{"GR00002", "GR00004"})
	assert.Equal(t, models.GRList{"GR00001", "GR00003"}, got)
	assert.Empty(t, dropped(nil, models.GRList{"GR00001"}))
}
