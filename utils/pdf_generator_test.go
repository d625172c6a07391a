package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/models"
)

func sampleRecord() *models.TransportRecord {
	return &models.TransportRecord{
		GRNo:          "GR00012",
		Date:          time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		FromLocation:  "Indore",
		ToLocation:    "Bhopal",
		ConsignorName: "Acme Traders",
		ConsigneeName: "Bharat <Stores>",
		ArticleColumns: models.ArticleColumns{
			ArticleNo:     "2|1",
			ArticleLength: 2,
			SaidToContain: "Cartons|Drum",
			HSN:           "9999|3403",
			Amount:        "10|20",
		},
		PaymentType:  "TO PAY",
		ToPay:        decimal.NewFromInt(35),
		MotorFreight: decimal.NewFromInt(5),
	}
}

func TestRenderTransportRecordHTML(t *testing.T) {
	company := &models.CompanyProfile{
		CompanyName: "MP Transport",
		City:        "Indore",
		Mobile:      []models.MobileEntry{{Number: "9000000000", Label: "Office"}},
	}

	html, err := RenderTransportRecordHTML(company, sampleRecord())
	require.NoError(t, err)

	for _, title := range CopyTitles {
		assert.Equal(t, 1, strings.Count(html, title), title)
	}
	assert.Equal(t, 3, strings.Count(html, "GR00012"))
	assert.Contains(t, html, "15-Jul-2025")
	assert.Contains(t, html, "Drum")
	assert.Contains(t, html, "35.00")
	assert.Contains(t, html, "Thirty Five Rupees Only")
	assert.Contains(t, html, "9000000000(Office)")
	assert.Contains(t, html, "Bharat &lt;Stores&gt;")
}

func TestRenderTransportRecordHTMLWithoutCompany(t *testing.T) {
	html, err := RenderTransportRecordHTML(nil, sampleRecord())
	require.NoError(t, err)
	assert.Contains(t, html, "Consignor Copy")
}

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")
	store := LocalStore{Dir: dir}

	location, err := store.Save(context.Background(), "../GR00012.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "GR00012.pdf"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Remove(context.Background(), location))
	require.NoError(t, store.Remove(context.Background(), location))
}

func TestR2ConfigEnabled(t *testing.T) {
	assert.False(t, R2Config{}.Enabled())
	assert.True(t, R2Config{Bucket: "b", AccountID: "a", PublicURL: "https://x"}.Enabled())
}
