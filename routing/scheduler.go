package routing

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// CacheSweeper 缓存定期清理调度器
//
// 缓存本身只做惰性过期，变冷的时间桶永远不会再被读到，长驻进程
// 需要这个周期清扫保证内存有界。
type CacheSweeper struct {
	cron      *cron.Cron
	estimator *Estimator
}

// NewCacheSweeper 创建缓存清理调度器
func NewCacheSweeper(estimator *Estimator) *CacheSweeper {
	return &CacheSweeper{
		cron:      cron.New(),
		estimator: estimator,
	}
}

// Start 启动调度器（每 10 分钟清理一次）
func (s *CacheSweeper) Start() error {
	_, err := s.cron.AddFunc("*/10 * * * *", func() {
		removed := s.estimator.EvictExpired()
		if removed > 0 {
			log.Info().
				Int("removed", removed).
				Int("remaining", s.estimator.CacheSize()).
				Msg("routing cache sweep completed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Msg("routing cache sweeper started (every 10 minutes)")
	return nil
}

// Stop 停止调度器
func (s *CacheSweeper) Stop() {
	s.cron.Stop()
	log.Info().Msg("routing cache sweeper stopped")
}
