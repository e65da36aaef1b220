package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient
type Client interface {
	redis.UniversalClient
}
