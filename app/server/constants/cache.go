package constants

import "time"

const (
	CacheKeySession = "campo:session:%s" // %s -> session id
)

const (
	CacheExpireSession = 24 * time.Hour
)
