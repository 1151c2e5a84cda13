package lookup

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключ отсутствует в кеше
	ErrCacheMiss = errors.New("lookup.cache: cache miss")

	// ErrCacheUnavailable возвращается при недоступности Redis
	ErrCacheUnavailable = errors.New("lookup.cache: cache unavailable")
)
