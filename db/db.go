package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
	Redis    DBType = "redis"
)

// DB is a backing service connection opened at startup and closed on
// shutdown.
type DB interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Type() DBType
}
