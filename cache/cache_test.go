package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordsearch/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return "value-for-" + key, nil
	}

	v, err := Load(cfg, "test-load-once", loader)
	is.NoErr(err)
	is.Equal(v.(string), "value-for-test-load-once")

	v, err = Load(cfg, "test-load-once", loader)
	is.NoErr(err)
	is.Equal(v.(string), "value-for-test-load-once")
	is.Equal(calls, 1)
}

func TestFailedLoadNotCached(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return 42, nil
	}

	_, err := Load(cfg, "test-failed-load", loader)
	is.True(err != nil)

	v, err := Load(cfg, "test-failed-load", loader)
	is.NoErr(err)
	is.Equal(v.(int), 42)
	is.Equal(calls, 2)
}

func TestEvict(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return calls, nil
	}
	_, err := Load(cfg, "test-evict", loader)
	is.NoErr(err)
	is.True(Evict("test-evict"))
	is.True(!Evict("test-evict"))

	v, err := Load(cfg, "test-evict", loader)
	is.NoErr(err)
	is.Equal(v.(int), 2)
}
