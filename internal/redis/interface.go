package redis

import (
	"io"

	"github.com/redis/go-redis/v9"
)

// Client is the slice of go-redis the document store needs: plain commands
// and shutdown. *redis.Client, cluster clients and redismock all satisfy it.
type Client interface {
	redis.Cmdable
	io.Closer
}
