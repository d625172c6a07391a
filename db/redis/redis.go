package redis

import (
	"context"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"mptransport/db"
)

type RedisDB struct {
	Client   *goredis.Client
	Locker   *redislock.Client
	Addr     string
	Password string
	DB       int
}

func NewRedisDB(addr, password string, database int) *RedisDB {
	return &RedisDB{Addr: addr, Password: password, DB: database}
}

func (r *RedisDB) Type() db.DBType { return db.Redis }

func (r *RedisDB) Connect(ctx context.Context) error {
	client := goredis.NewClient(&goredis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}
	r.Client = client
	r.Locker = redislock.New(client)
	return nil
}

func (r *RedisDB) Disconnect(context.Context) error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
