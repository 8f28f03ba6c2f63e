package bch

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Params identifies a code by its length, first root exponent and
// designed distance, as passed to Synthesize.
type Params struct {
	N, B, D int
}

func (p Params) String() string {
	return fmt.Sprintf("n=%d,b=%d,d=%d", p.N, p.B, p.D)
}

type cacheEntry struct {
	code  Code
	codec *Codec
}

// A Cache memoizes synthesized codes and their codecs. Concurrent
// requests for the same parameters synthesize only once. Failures
// are not cached.
type Cache struct {
	group   singleflight.Group
	entries *lru.Cache[Params, cacheEntry]
}

// NewCache returns a Cache that holds up to size codes.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[Params, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the code and codec for p, synthesizing them if
// necessary.
func (c *Cache) Get(p Params) (Code, *Codec, error) {
	if e, ok := c.entries.Get(p); ok {
		return e.code, e.codec, nil
	}

	v, err, _ := c.group.Do(p.String(), func() (interface{}, error) {
		if e, ok := c.entries.Get(p); ok {
			return e, nil
		}
		code, err := Synthesize(p.N, p.B, p.D)
		if err != nil {
			return nil, err
		}
		codec, err := code.NewCodec()
		if err != nil {
			return nil, err
		}
		e := cacheEntry{code, codec}
		c.entries.Add(p, e)
		return e, nil
	})
	if err != nil {
		return Code{}, nil, err
	}
	e := v.(cacheEntry)
	return e.code, e.codec, nil
}

// Len returns the number of cached codes.
func (c *Cache) Len() int {
	return c.entries.Len()
}
