package routing

import (
	"fmt"
	"sync"
	"time"
)

const (
	// 坐标聚合精度：3 位小数，约 110m 网格
	// 骑手和收货点在空间上聚集，牺牲精度换命中率
	cellPrecision = "%.3f,%.3f"

	// 出发时间按 15 分钟分桶，假设路况在一刻钟内稳定
	timeBucketSeconds = 900

	// DefaultCacheTTL 缓存条目默认有效期
	DefaultCacheTTL = 20 * time.Minute
)

// cacheEntry 单个点对的估算缓存
type cacheEntry struct {
	distanceKm      float64
	durationMinutes float64
	expiresAt       time.Time
}

// travelCache 时空两维分桶的行程估算缓存
//
// 纯内存 map，仅靠 TTL 惰性过期，不做容量上限：key 空间天然受
// 运营区域网格数 × 滚动时间桶数约束，旧时间桶永久变冷后在下次
// 命中尝试时被剔除。进程会周期性重启，接受这一资源增长取舍；
// 长驻进程可另行启用 CacheSweeper 周期清理。
//
// map 本身不是并发安全的，gin/asynq 下多 goroutine 同时读写，
// 必须持锁访问。
type travelCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newTravelCache(ttl time.Duration) *travelCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &travelCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// cellOf 坐标吸附到网格单元
func cellOf(p Point) string {
	return fmt.Sprintf(cellPrecision, p.Lat, p.Lng)
}

// bucketOf 出发时间所在的时间桶
func bucketOf(departure time.Time) int64 {
	return departure.Unix() / timeBucketSeconds
}

// keyFor 相同 (origin, destination, departure) 必然生成相同 key；
// 邻近的点/时刻有意落入同一 key
func keyFor(origin, destination Point, departure time.Time) string {
	return fmt.Sprintf("%s|%s|%d", cellOf(origin), cellOf(destination), bucketOf(departure))
}

// get 查询缓存，过期条目在读取时剔除（惰性过期，无后台扫描）
func (c *travelCache) get(origin, destination Point, departure time.Time) (cacheEntry, bool) {
	key := keyFor(origin, destination, departure)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return cacheEntry{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return cacheEntry{}, false
	}
	return entry, true
}

// set 写入缓存，无条件覆盖同 key 旧值（provider 的回答比缓存近似更权威）
func (c *travelCache) set(origin, destination Point, departure time.Time, distanceKm, durationMinutes float64) {
	key := keyFor(origin, destination, departure)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		distanceKm:      distanceKm,
		durationMinutes: durationMinutes,
		expiresAt:       time.Now().Add(c.ttl),
	}
}

// sweep 清理所有已过期条目，返回清理数量
func (c *travelCache) sweep() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// size 当前条目数
func (c *travelCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
