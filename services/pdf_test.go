package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/models"
	"mptransport/utils"
)

type fakeRenderer struct {
	html string
	err  error
}

func (r *fakeRenderer) Render(_ context.Context, html string) ([]byte, error) {
	r.html = html
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func TestGeneratePDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := f.book(t)
	_, err := f.CompanyProfiles.Save(ctx, models.CompanyProfile{CompanyName: "MP Transport", GSTIN: "23abc"})
	require.NoError(t, err)

	renderer := &fakeRenderer{}
	svc := NewPDFService(f.Services.TransportRecords.Deps, renderer, utils.LocalStore{Dir: t.TempDir()})

	first, err := svc.Generate(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.Contains(t, renderer.html, "MP Transport")
	assert.Contains(t, renderer.html, "Forty Rupees Only")

	got, err := f.TransportRecords.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	require.NotNil(t, got.PdfPath)
	assert.Equal(t, first.Location, *got.PdfPath)
	require.NotNil(t, got.PdfCreatedAt)

	second, err := svc.Generate(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.NotEqual(t, first.Location, second.Location)
	_, err = os.Stat(first.Location)
	assert.True(t, os.IsNotExist(err), "previous pdf is removed")
	_, err = os.Stat(second.Location)
	assert.NoError(t, err)
}

func TestGeneratePDFErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := f.book(t)

	svc := NewPDFService(f.Services.TransportRecords.Deps, &fakeRenderer{}, utils.LocalStore{Dir: t.TempDir()})
	_, err := svc.Generate(ctx, "GR09999")
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("chrome missing")
	svc.Renderer = &fakeRenderer{err: boom}
	_, err = svc.Generate(ctx, rec.GRNo)
	assert.ErrorIs(t, err, boom)

	got, err := f.TransportRecords.Get(ctx, rec.GRNo)
	require.NoError(t, err)
	assert.Nil(t, got.PdfPath)
}
