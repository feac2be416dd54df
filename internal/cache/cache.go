package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pmurley/outlook-bot/internal/models"
)

const snapshotKey = "league_snapshot"

// Cache holds the fetched league snapshot between planning runs. A flush
// (manual or from the transaction monitor) forces the next command to
// rebuild from fresh inputs.
type Cache struct {
	cache    *gocache.Cache
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

func (c *Cache) SetSnapshot(snap *models.LeagueSnapshot) {
	c.cache.Set(snapshotKey, snap, c.duration)
}

func (c *Cache) GetSnapshot() (*models.LeagueSnapshot, bool) {
	if snap, found := c.cache.Get(snapshotKey); found {
		return snap.(*models.LeagueSnapshot), true
	}
	return nil, false
}

func (c *Cache) Flush() {
	c.cache.Flush()
}
