package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
)

// The cache holds large objects we only want to build once per process,
// such as dictionaries that a shell session or the bot searches repeatedly.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is shared by the whole process. It is created on first
// use; see CreateGlobalObjectCache.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	if !ok {
		err := c.load(cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func (c *cache) evict(key string) bool {
	c.Lock()
	defer c.Unlock()
	_, ok := c.objects[key]
	delete(c.objects, key)
	return ok
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	})
}

// Load returns the object cached under name, building it with loadFunc
// the first time it is asked for. Failed loads are not cached.
func Load(cfg *config.Config, name string, loadFunc loadFunc) (any, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Evict drops name from the cache so the next Load rebuilds it. It returns
// whether anything was cached under that name.
func Evict(name string) bool {
	CreateGlobalObjectCache()
	return GlobalObjectCache.evict(name)
}
