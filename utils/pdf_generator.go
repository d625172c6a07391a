package utils

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"mptransport/models"
)

// CopyTitles are printed in this order, one copy each.
var CopyTitles = []string{"Consignor Copy", "Consignee Copy", "Driver Copy"}

//go:embed templates/transport_record.html
var transportRecordHTML string

var transportRecordTmpl = template.Must(template.New("transport_record").Parse(transportRecordHTML))

const pageStyle = `
@page {
	size: A4;
	margin: 20px;
}
body {
	font-family: Arial, Helvetica, sans-serif;
	font-size: 12px;
	margin: 0;
	padding: 0;
}
table {
	width: 100%;
	border-collapse: collapse;
}
td, th {
	border: 1px solid #000;
	padding: 3px 5px;
	vertical-align: top;
}
.record-copy {
	page-break-inside: avoid;
	margin-bottom: 12px;
}
.company {
	font-size: 18px;
	font-weight: bold;
}
.copy {
	text-align: right;
	font-weight: bold;
}
.num {
	text-align: right;
}
.note-text {
	font-size: 10px;
}
`

// RenderTransportRecordHTML renders every copy of the consignment note
// into one HTML document.
func RenderTransportRecordHTML(company *models.CompanyProfile, rec *models.TransportRecord) (string, error) {
	date := "-"
	if !rec.Date.IsZero() {
		date = rec.Date.Format("02-Jan-2006")
	}
	articles := rec.Articles
	if len(articles) == 0 {
		articles = rec.ArticleColumns.Articles()
	}
	total := rec.ToPay.Add(rec.Paid)

	var body bytes.Buffer
	for _, title := range CopyTitles {
		data := models.TransportRecordPDFData{
			Company:    company,
			Record:     rec,
			Articles:   articles,
			Contacts:   company.Contacts(),
			Date:       date,
			Total:      total,
			TotalWords: NumberToCurrencyWords(total),
			CopyTitle:  title,
		}
		body.WriteString("<div class='record-copy'>")
		if err := transportRecordTmpl.Execute(&body, data); err != nil {
			return "", fmt.Errorf("render %s: %w", title, err)
		}
		body.WriteString("</div>")
	}

	return `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>` + pageStyle + `</style>
</head>
<body>` + body.String() + `</body></html>`, nil
}

// ChromePDF prints HTML to an A4 PDF with headless Chrome.
type ChromePDF struct {
	Timeout time.Duration
}

func (c ChromePDF) Render(ctx context.Context, html string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "transport_record_*.html")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmp.Name()),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdf, nil
}
