package expectimax

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash"

	"github.com/vovakirdan/auto2048/internal/board"
)

const cacheShards = 16

type cacheKey struct {
	b     board.Board
	depth int
	kind  NodeKind
}

type cacheShard struct {
	mu      sync.Mutex
	entries map[cacheKey]float64
}

// Cache memoises search values by (board, depth, node kind). Search is a
// pure function of that triple, so a hit returns exactly the value a
// recomputation would. Safe for concurrent use.
type Cache struct {
	shards  [cacheShards]cacheShard
	lookups atomic.Uint64
	hits    atomic.Uint64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[cacheKey]float64)
	}
	return c
}

func (c *Cache) shard(b board.Board) *cacheShard {
	var buf [board.Size * board.Size * 4]byte
	for y := range board.Size {
		for x := range board.Size {
			binary.LittleEndian.PutUint32(buf[(y*board.Size+x)*4:], uint32(b[y][x]))
		}
	}
	return &c.shards[xxhash.Sum64(buf[:])%cacheShards]
}

// Get returns the memoised value, if any.
func (c *Cache) Get(b board.Board, depth int, kind NodeKind) (float64, bool) {
	c.lookups.Add(1)
	sh := c.shard(b)
	sh.mu.Lock()
	v, ok := sh.entries[cacheKey{b, depth, kind}]
	sh.mu.Unlock()
	if ok {
		c.hits.Add(1)
	}
	return v, ok
}

// Put stores a value.
func (c *Cache) Put(b board.Board, depth int, kind NodeKind, v float64) {
	sh := c.shard(b)
	sh.mu.Lock()
	sh.entries[cacheKey{b, depth, kind}] = v
	sh.mu.Unlock()
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		c.shards[i].mu.Lock()
		n += len(c.shards[i].entries)
		c.shards[i].mu.Unlock()
	}
	return n
}

// Hits returns how many lookups found an entry.
func (c *Cache) Hits() uint64 { return c.hits.Load() }

// Lookups returns the total number of lookups.
func (c *Cache) Lookups() uint64 { return c.lookups.Load() }
