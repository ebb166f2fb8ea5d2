package routing

import "math"

const (
	// 地球半径（公里）
	earthRadiusKm = 6371.0

	// DefaultFallbackSpeedKmh 降级估算的平均速度
	// 偏保守的城区混合路况均值，属于可调策略参数而非物理常量
	DefaultFallbackSpeedKmh = 25.0
)

// HaversineKm 计算两点间的球面距离（公里）
// 使用 Haversine 公式
func HaversineKm(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// fallbackCalculator 几何降级估算器
// provider 不可用时用直线距离加假设速度给出估算，对任意合法坐标永不失败
type fallbackCalculator struct {
	speedKmh float64
}

// estimate 估算单个点对的距离（公里）和耗时（分钟）
// 速度被配置为 0 时视为无法估算耗时，返回 0 而不是除零
func (f fallbackCalculator) estimate(from, to Point) (distanceKm, durationMinutes float64) {
	distanceKm = HaversineKm(from, to)
	if f.speedKmh <= 0 {
		return distanceKm, 0
	}
	durationMinutes = distanceKm / f.speedKmh * 60
	return distanceKm, durationMinutes
}

// fillMatrix 对每个点对独立估算，填满整个矩阵
func (f fallbackCalculator) fillMatrix(m *DistanceMatrix, origins, destinations []Point) {
	for i, origin := range origins {
		for j, destination := range destinations {
			m.DistancesKm[i][j], m.DurationsMinutes[i][j] = f.estimate(origin, destination)
		}
	}
}

// fillCell 估算单个单元格
func (f fallbackCalculator) fillCell(m *DistanceMatrix, origins, destinations []Point, i, j int) {
	m.DistancesKm[i][j], m.DurationsMinutes[i][j] = f.estimate(origins[i], destinations[j])
}

// route 按输入顺序对相邻点对逐段估算，不做任何重排
func (f fallbackCalculator) route(origin Point, waypoints []Point) *Route {
	route := &Route{Legs: make([]RouteLeg, 0, len(waypoints))}

	from := origin
	for _, to := range waypoints {
		distanceKm, durationMinutes := f.estimate(from, to)
		route.Legs = append(route.Legs, RouteLeg{
			From:            from,
			To:              to,
			DistanceKm:      distanceKm,
			DurationMinutes: durationMinutes,
		})
		from = to
	}

	return route
}
