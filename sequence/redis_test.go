package sequence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCounter(t *testing.T) (*RedisCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCounter(client, redislock.New(client)), mr
}

func TestRedisCounterSeedsOnceThenIncrements(t *testing.T) {
	counter, mr := newRedisCounter(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "transport_records"`)).
		WithArgs("GR%", 3).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(5))

	ctx := context.Background()
	var got []string
	for i := 0; i < 3; i++ {
		id, err := Mint(ctx, counter, db, GR())
		require.NoError(t, err)
		got = append(got, id)
	}
	assert.Equal(t, []string{"GR00006", "GR00007", "GR00008"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())

	v, err := mr.Get("idseq:transport_records:GR")
	require.NoError(t, err)
	assert.Equal(t, "8", v)
}

func TestRedisCounterNamespacesAreIndependent(t *testing.T) {
	counter, mr := newRedisCounter(t)
	ch25 := Challan(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ch26 := Challan(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, mr.Set("idseq:"+ch25.Key(), "11"))
	require.NoError(t, mr.Set("idseq:"+ch26.Key(), "0"))

	ctx := context.Background()
	a, err := Mint(ctx, counter, nil, ch25)
	require.NoError(t, err)
	b, err := Mint(ctx, counter, nil, ch26)
	require.NoError(t, err)

	assert.Equal(t, "25CH00012", a)
	assert.Equal(t, "26CH00001", b)
}

func TestRedisCounterReset(t *testing.T) {
	counter, mr := newRedisCounter(t)
	require.NoError(t, mr.Set("idseq:transport_records:GR", "9"))

	require.NoError(t, counter.Reset(context.Background(), GR()))
	assert.False(t, mr.Exists("idseq:transport_records:GR"))
}
