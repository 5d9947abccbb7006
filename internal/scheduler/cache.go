package scheduler

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/davidbarsky/benchmark-rust-analyzer-reads/internal/project"
)

// Cache remembers the contents of immutable units, keyed by unit name.
// Workspace members are never cached since their sources change between
// loads; failed loads are never cached either. A nil *Cache is a valid
// no-op cache.
type Cache struct {
	contents *lru.Cache[string, []string]
}

func NewCache(size int) (*Cache, error) {
	contents, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{contents: contents}, nil
}

func (c *Cache) Lookup(unit project.Unit) ([]string, bool) {
	if c == nil || !unit.Immutable {
		return nil, false
	}
	return c.contents.Get(unit.Name)
}

func (c *Cache) Remember(unit project.Unit, files []string) {
	if c == nil || !unit.Immutable {
		return
	}
	c.contents.Add(unit.Name, files)
}
