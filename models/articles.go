package models

import (
	"fmt"
	"strings"
)

// PipeSeparator joins per-article values inside a single column.
const PipeSeparator = "|"

// DefaultHSN is stored for every article when no HSN code is given.
const DefaultHSN = "9999"

// MaxArticles bounds the number of articles on one GR.
const MaxArticles = 100

type Article struct {
	NoOfArticles     string `json:"noOfArticles" validate:"max=50"`
	SaidToContain    string `json:"saidToContain" validate:"max=255"`
	TaxFree          string `json:"taxFree" validate:"max=50"`
	WeightChargeable string `json:"weightChargeable" validate:"max=50"`
	ActualWeight     string `json:"actualWeight" validate:"max=50"`
	HSN              string `json:"hsn" validate:"max=20"`
	Amount           string `json:"amount" validate:"max=50"`
}

type Articles []Article

// ArticleColumns is the stored form of an article list: one pipe-joined
// column per field, all of ArticleLength entries.
type ArticleColumns struct {
	ArticleNo        string `json:"article_no" db:"article_no"`
	ArticleLength    int    `json:"article_length" db:"article_length"`
	SaidToContain    string `json:"said_to_contain" db:"said_to_contain"`
	TaxFree          string `json:"tax_free" db:"tax_free"`
	WeightChargeable string `json:"weight_chargeable" db:"weight_chargeable"`
	ActualWeight     string `json:"actual_weight" db:"actual_weight"`
	HSN              string `json:"hsn" db:"hsn"`
	Amount           string `json:"amount" db:"amount"`
}

// ArticleFieldError reports a per-article column that does not line up
// with the declared article count, or a value that cannot be stored.
type ArticleFieldError struct {
	Field  string
	Reason string
}

func (e *ArticleFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// JoinPipe joins values in order. Values must not contain the separator.
func JoinPipe(field string, values []string) (string, error) {
	for i, v := range values {
		if strings.Contains(v, PipeSeparator) {
			return "", &ArticleFieldError{Field: field, Reason: fmt.Sprintf("article %d contains '|'", i+1)}
		}
	}
	return strings.Join(values, PipeSeparator), nil
}

// SplitPipe splits a stored column, trimming blanks around each entry.
// An empty column yields no entries.
func SplitPipe(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, PipeSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Columns encodes the list into its stored form. Missing HSN codes are
// filled with DefaultHSN.
func (a Articles) Columns() (ArticleColumns, error) {
	n := len(a)
	nos := make([]string, n)
	contents := make([]string, n)
	taxFree := make([]string, n)
	chargeable := make([]string, n)
	actual := make([]string, n)
	hsn := make([]string, n)
	amounts := make([]string, n)
	for i, art := range a {
		nos[i] = strings.TrimSpace(art.NoOfArticles)
		contents[i] = strings.TrimSpace(art.SaidToContain)
		taxFree[i] = strings.TrimSpace(art.TaxFree)
		chargeable[i] = strings.TrimSpace(art.WeightChargeable)
		actual[i] = strings.TrimSpace(art.ActualWeight)
		hsn[i] = strings.TrimSpace(art.HSN)
		if hsn[i] == "" {
			hsn[i] = DefaultHSN
		}
		amounts[i] = strings.TrimSpace(art.Amount)
	}

	cols := ArticleColumns{ArticleLength: n}
	fields := []struct {
		name   string
		values []string
		dst    *string
	}{
		{"articleNo", nos, &cols.ArticleNo},
		{"saidToContain", contents, &cols.SaidToContain},
		{"taxFree", taxFree, &cols.TaxFree},
		{"weightChargeable", chargeable, &cols.WeightChargeable},
		{"actualWeight", actual, &cols.ActualWeight},
		{"hsn", hsn, &cols.HSN},
		{"amount", amounts, &cols.Amount},
	}
	for _, f := range fields {
		joined, err := JoinPipe(f.name, f.values)
		if err != nil {
			return ArticleColumns{}, err
		}
		*f.dst = joined
	}
	return cols, nil
}

// Decode converts stored columns back into an article list, checking that
// every non-empty column splits into exactly ArticleLength entries.
func (c ArticleColumns) Decode() (Articles, error) {
	if c.ArticleLength < 0 {
		return nil, &ArticleFieldError{Field: "articleLength", Reason: "must not be negative"}
	}
	if c.ArticleLength > MaxArticles {
		return nil, &ArticleFieldError{Field: "articleLength", Reason: fmt.Sprintf("must be at most %d", MaxArticles)}
	}
	cols := []struct {
		name  string
		value string
	}{
		{"articleNo", c.ArticleNo},
		{"saidToContain", c.SaidToContain},
		{"taxFree", c.TaxFree},
		{"weightChargeable", c.WeightChargeable},
		{"actualWeight", c.ActualWeight},
		{"hsn", c.HSN},
		{"amount", c.Amount},
	}
	filled := 0
	for _, col := range cols {
		got := len(SplitPipe(col.value))
		if got == 0 {
			continue
		}
		if got != c.ArticleLength {
			return nil, &ArticleFieldError{
				Field:  col.name,
				Reason: fmt.Sprintf("has %d entries, want %d", got, c.ArticleLength),
			}
		}
		filled++
	}
	if c.ArticleLength > 0 && filled == 0 {
		return nil, &ArticleFieldError{Field: "articleLength", Reason: "set but no article columns given"}
	}
	arts := c.Articles()
	for i := range arts {
		if arts[i].HSN == "" {
			arts[i].HSN = DefaultHSN
		}
	}
	return arts, nil
}

// Articles rebuilds the list without validation; short columns leave
// blanks, the way older rows are rendered. The count is capped at
// MaxArticles.
func (c ArticleColumns) Articles() Articles {
	if c.ArticleLength <= 0 {
		return Articles{}
	}
	n := min(c.ArticleLength, MaxArticles)
	nos := SplitPipe(c.ArticleNo)
	contents := SplitPipe(c.SaidToContain)
	taxFree := SplitPipe(c.TaxFree)
	chargeable := SplitPipe(c.WeightChargeable)
	actual := SplitPipe(c.ActualWeight)
	hsn := SplitPipe(c.HSN)
	amounts := SplitPipe(c.Amount)

	at := func(parts []string, i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	out := make(Articles, n)
	for i := range out {
		out[i] = Article{
			NoOfArticles:     at(nos, i),
			SaidToContain:    at(contents, i),
			TaxFree:          at(taxFree, i),
			WeightChargeable: at(chargeable, i),
			ActualWeight:     at(actual, i),
			HSN:              at(hsn, i),
			Amount:           at(amounts, i),
		}
	}
	return out
}
