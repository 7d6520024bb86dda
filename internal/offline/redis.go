package offline

import (
	"github.com/gofiber/storage/redis/v3"
)

// NewRedisKV opens a redis-backed KV from a connection URL
// (redis://host:port/db). The redis driver satisfies the KV contract
// directly; this keeps cached responses shared across restarts and
// replicas.
func NewRedisKV(url string) KV {
	return redis.New(redis.Config{
		URL: url,
	})
}
