package cache

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/cubero/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	Flush()

	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return "object for " + key, nil
	}

	obj, err := Load(nil, "a", loader)
	is.NoErr(err)
	is.Equal(obj, "object for a")

	obj, err = Load(nil, "a", loader)
	is.NoErr(err)
	is.Equal(obj, "object for a")
	is.Equal(calls, 1)

	_, err = Load(nil, "b", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestGetTyped(t *testing.T) {
	is := is.New(t)
	Flush()

	loader := func(cfg *config.Config, key string) (any, error) {
		return 42, nil
	}

	n, err := Get[int](nil, "n", loader)
	is.NoErr(err)
	is.Equal(n, 42)

	_, err = Get[string](nil, "n", loader)
	is.True(err != nil)
}

func TestFlush(t *testing.T) {
	is := is.New(t)
	Flush()

	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return calls, nil
	}

	first, err := Get[int](nil, "k", loader)
	is.NoErr(err)
	Flush()
	second, err := Get[int](nil, "k", loader)
	is.NoErr(err)
	is.Equal(first, 1)
	is.Equal(second, 2)
}
