package config

import (
	"github.com/redis/rueidis"
	log "github.com/sirupsen/logrus"
)

// NewRedisClient connects the board cache to redis. The cache is optional;
// when redis is unreachable the caller should run without it rather than
// refusing to start.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			DisableCache: true,
		},
	)
	if err != nil {
		log.Warnf("redis unavailable, serving without read cache: %v", err)
		return nil
	}

	return redisClient
}
