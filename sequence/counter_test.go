package sequence

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCounterAdvancesExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE id_counter SET value = value + 1")).
		WithArgs("transport_records:GR").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(8))

	id, err := Mint(context.Background(), PostgresCounter{}, db, GR())
	require.NoError(t, err)
	assert.Equal(t, "GR00008", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCounterSeedsFromTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ns := mustCustomer(t, "Anand")

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE id_counter")).
		WithArgs("customers:A").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "customers"`)).
		WithArgs("A%", 2).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(41))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO id_counter")).
		WithArgs("customers:A", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))

	id, err := Mint(context.Background(), PostgresCounter{}, db, ns)
	require.NoError(t, err)
	assert.Equal(t, "A0042", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCounterPropagatesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE id_counter")).WillReturnError(boom)

	_, err = PostgresCounter{}.Next(context.Background(), db, GR())
	assert.ErrorIs(t, err, boom)
}

func TestMintReportsExhaustion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE id_counter")).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(100000))

	_, err = Mint(context.Background(), PostgresCounter{}, db, GR())
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestMaxSuffixEscapesLikePattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ns := mustCustomer(t, "_underscore co")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "customers"`)).
		WithArgs(`\_%`, 2).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))

	got, err := MaxSuffix(context.Background(), db, ns)
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaxSuffixCastsStartPositionToInt(t *testing.T) {
	// An untyped start position resolves to the regex overload of SUBSTRING.
	matcher := sqlmock.QueryMatcherFunc(func(_, actual string) error {
		if n := strings.Count(actual, "FROM $2::int)"); n != 2 {
			return fmt.Errorf("want both SUBSTRING calls cast to int, got %d in %q", n, actual)
		}
		return nil
	})
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("max suffix").
		WithArgs("GR%", 3).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(12))

	got, err := MaxSuffix(context.Background(), db, GR())
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
