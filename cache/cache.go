// Package cache is a process-wide store for expensive loaded objects,
// word lists and cube sets in particular, so each is read from disk
// once no matter how many games use it.
package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/cubero/config"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

// A LoadFunc materializes the object for a key on the first request.
type LoadFunc func(cfg *config.Config, key string) (any, error)

var globalCache = &cache{objects: make(map[string]any)}

func (c *cache) get(cfg *config.Config, key string, load LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Load fetches the object for key, materializing it on first use.
func Load(cfg *config.Config, key string, load LoadFunc) (any, error) {
	return globalCache.get(cfg, key, load)
}

// Get is Load with the type assertion folded in.
func Get[T any](cfg *config.Config, key string, load LoadFunc) (T, error) {
	var zero T
	obj, err := Load(cfg, key, load)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("cached object %v has type %T, not %T", key, obj, zero)
	}
	return t, nil
}

// Flush empties the cache. Tests use it to force reloads.
func Flush() {
	globalCache.Lock()
	defer globalCache.Unlock()
	globalCache.objects = make(map[string]any)
}
