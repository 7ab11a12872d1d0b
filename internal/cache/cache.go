package cache

import "time"

// Cache stores rendered responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key namespaces a cache key
func Key(name string) string {
	return "worldcup:v1:" + name
}

// GetOrRender returns the cached value for key, rendering and storing it on a miss
func GetOrRender(c Cache, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error) {
	if c == nil {
		return render()
	}
	if val, found := c.Get(key); found {
		return val, nil
	}
	val, err := render()
	if err != nil {
		return nil, err
	}
	if err := c.Set(key, val, ttl); err != nil {
		return nil, err
	}
	return val, nil
}
