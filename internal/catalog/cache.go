package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/karlseguin/ccache/v2"
)

const tvlCacheKey = "tvl"

// TvlCache - single-slot TTL cache holding the last computed TVL sequence.
// An expired slot is never served; the janitor drops it shortly after expiry.
type TvlCache struct {
	cache *ccache.Cache
	ttl   time.Duration

	wg *sync.WaitGroup
}

// NewTvlCache -
func NewTvlCache(ttl time.Duration) *TvlCache {
	if ttl <= 0 {
		ttl = time.Second * 5
	}
	return &TvlCache{
		cache: ccache.New(ccache.Configure().MaxSize(1)),
		ttl:   ttl,
		wg:    new(sync.WaitGroup),
	}
}

// Start - launches the janitor purging the slot after its TTL passes
func (c *TvlCache) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.purge(ctx)
}

func (c *TvlCache) purge(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if item := c.cache.Get(tvlCacheKey); item != nil && item.Expired() {
				c.cache.Delete(tvlCacheKey)
			}
		}
	}
}

// Get - the cached sequence, or a miss when the slot is absent or expired.
// Expiry is checked on the item itself, so a purge racing the read can only
// turn a hit into a miss, never serve a stale sequence.
func (c *TvlCache) Get() ([]TokenTvl, bool) {
	item := c.cache.Get(tvlCacheKey)
	if item == nil {
		return nil, false
	}
	if item.Expired() {
		c.cache.Delete(tvlCacheKey)
		return nil, false
	}
	return item.Value().([]TokenTvl), true
}

// Put - overwrites the slot and restarts the TTL window. Concurrent writers
// race last-writer-wins; a single-flight guard around the recomputation is
// the place to start if the full scan ever gets expensive.
func (c *TvlCache) Put(tvl []TokenTvl) {
	c.cache.Set(tvlCacheKey, tvl, c.ttl)
}

// Close -
func (c *TvlCache) Close() error {
	c.wg.Wait()
	c.cache.Stop()
	return nil
}
