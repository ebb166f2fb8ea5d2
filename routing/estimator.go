package routing

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

var errMalformedMatrix = errors.New("provider returned matrix with unexpected dimensions")

// matrixShapeValid 校验 provider 返回的矩阵维度与请求一致
func matrixShapeValid(rows [][]MatrixElement, wantRows, wantCols int) bool {
	if len(rows) != wantRows {
		return false
	}
	for _, row := range rows {
		if len(row) != wantCols {
			return false
		}
	}
	return true
}

// Config 估算器配置
type Config struct {
	CacheTTL         time.Duration // 缓存有效期，默认 20 分钟
	Timeout          time.Duration // provider 请求超时，默认 30 秒
	FallbackSpeedKmh float64       // 降级估算平均速度，默认 25km/h
}

// Estimator 行程估算服务
//
// 调度决策的唯一行程数据入口：缓存命中直接返回，缺失时批量请求
// provider，provider 缺席/超时/报错时降级为几何估算。两个入口
// 方法永不返回错误，调用方对每个点对一定能拿到一个可用数字。
//
// provider 为 nil 表示未配置地图 key，所有估算直接走几何降级，
// 不发起任何 HTTP 请求。
type Estimator struct {
	provider ProviderClient
	cache    *travelCache
	fallback fallbackCalculator
	timeout  time.Duration
}

// NewEstimator 创建行程估算服务
// 缓存由估算器实例持有（构造注入，不用包级单例），测试之间互不串味
func NewEstimator(provider ProviderClient, cfg Config) *Estimator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	speed := cfg.FallbackSpeedKmh
	if speed == 0 {
		speed = DefaultFallbackSpeedKmh
	}

	return &Estimator{
		provider: provider,
		cache:    newTravelCache(cfg.CacheTTL),
		fallback: fallbackCalculator{speedKmh: speed},
		timeout:  timeout,
	}
}

// missingPair 缓存未命中的矩阵单元
type missingPair struct {
	i, j int
}

// GetTravelTimes 批量估算 origins × destinations 的距离/耗时矩阵
//
// 矩阵所有单元格保证有值：缓存命中的用缓存，其余由一次批量
// provider 请求覆盖；provider 整体失败时整个矩阵统一降级为几何
// 估算（半真半假的矩阵对比较相对大小的调度逻辑反而更糟），单点
// 失败只降级该单元格。
func (e *Estimator) GetTravelTimes(ctx context.Context, origins, destinations []Point, departure time.Time) *DistanceMatrix {
	matrix := NewDistanceMatrix(len(origins), len(destinations))
	if len(origins) == 0 || len(destinations) == 0 {
		return matrix
	}

	// 逐点对查缓存，记下缺失的单元格
	var missing []missingPair
	for i, origin := range origins {
		for j, destination := range destinations {
			if entry, ok := e.cache.get(origin, destination, departure); ok {
				matrix.DistancesKm[i][j] = entry.distanceKm
				matrix.DurationsMinutes[i][j] = entry.durationMinutes
			} else {
				missing = append(missing, missingPair{i: i, j: j})
			}
		}
	}

	// 全部命中，零 provider 调用
	if len(missing) == 0 {
		return matrix
	}

	// 未配置地图 key：整个矩阵几何估算，不发请求
	if e.provider == nil {
		e.fallback.fillMatrix(matrix, origins, destinations)
		return matrix
	}

	// 只要有缺失就按完整集合发一次批量请求：provider 的矩阵接口
	// 一次算全量，比逐点对补洞便宜；新值顺手覆盖已命中的缓存近似
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	rows, err := e.provider.GetDistanceMatrix(callCtx, origins, destinations, departure)
	if err == nil && !matrixShapeValid(rows, len(origins), len(destinations)) {
		// 残缺的矩阵不能只信一半
		err = errMalformedMatrix
	}
	if err != nil {
		log.Warn().Err(err).
			Int("origins", len(origins)).
			Int("destinations", len(destinations)).
			Msg("distance matrix provider failed, falling back to geometric estimate")
		e.fallback.fillMatrix(matrix, origins, destinations)
		return matrix
	}

	// 响应已完整解析，此后才允许写缓存（取消的请求不会留下半套缓存）
	for i := range origins {
		for j := range destinations {
			elem := rows[i][j]
			if !elem.OK {
				log.Warn().
					Str("origin", origins[i].String()).
					Str("destination", destinations[j].String()).
					Msg("provider marked pair unreachable, using geometric estimate for cell")
				e.fallback.fillCell(matrix, origins, destinations, i, j)
				continue
			}

			matrix.DistancesKm[i][j] = elem.DistanceKm
			matrix.DurationsMinutes[i][j] = elem.DurationMinutes
			e.cache.set(origins[i], destinations[j], departure, elem.DistanceKm, elem.DurationMinutes)
		}
	}

	return matrix
}

// GetRoute 规划 origin 依次经过 waypoints 的路线
//
// optimize 为 true 时由 provider 决定途经点顺序，本服务不实现
// 自己的重排启发式；降级估算无法复刻 provider 侧优化，始终按
// 输入顺序逐段估算。
func (e *Estimator) GetRoute(ctx context.Context, origin Point, waypoints []Point, departure time.Time, optimize bool) *Route {
	if len(waypoints) == 0 {
		return &Route{}
	}

	if e.provider == nil {
		return e.fallback.route(origin, waypoints)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	route, err := e.provider.GetDirections(callCtx, origin, waypoints, departure, optimize)
	if err != nil || route == nil || len(route.Legs) == 0 {
		log.Warn().Err(err).
			Int("waypoints", len(waypoints)).
			Bool("optimize", optimize).
			Msg("directions provider failed, falling back to geometric route")
		return e.fallback.route(origin, waypoints)
	}

	return route
}

// UsingProvider 是否配置了地图 provider
// 调用方以此标记估算值来源（provider / estimated）
func (e *Estimator) UsingProvider() bool {
	return e.provider != nil
}

// EvictExpired 清理过期缓存条目，返回清理数量
// 惰性过期之外的可选增强，长驻进程由 CacheSweeper 周期调用
func (e *Estimator) EvictExpired() int {
	return e.cache.sweep()
}

// CacheSize 当前缓存条目数（监控用）
func (e *Estimator) CacheSize() int {
	return e.cache.size()
}
