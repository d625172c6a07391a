package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"mptransport/db"
)

type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type PostgresDB struct {
	Conn *sql.DB
	URL  string
	Pool PoolSettings
}

func NewPostgresDB(url string, pool PoolSettings) *PostgresDB {
	return &PostgresDB{URL: url, Pool: pool}
}

func (p *PostgresDB) Type() db.DBType { return db.Postgres }

func (p *PostgresDB) Connect(ctx context.Context) error {
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}

	if p.Pool.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(p.Pool.MaxOpenConns)
	}
	if p.Pool.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(p.Pool.MaxIdleConns)
	}
	conn.SetConnMaxLifetime(p.Pool.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(p.Pool.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return err
	}
	p.Conn = conn
	return nil
}

func (p *PostgresDB) Disconnect(context.Context) error {
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}
