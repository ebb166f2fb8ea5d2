package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	// 北京：天安门 -> 王府井，直线约 1.7 公里
	tiananmen := Point{Lat: 39.9087, Lng: 116.3975}
	wangfujing := Point{Lat: 39.9146, Lng: 116.4103}

	distance := HaversineKm(tiananmen, wangfujing)
	require.Greater(t, distance, 1.0)
	require.Less(t, distance, 2.0)

	// 同一点距离为 0
	require.Zero(t, HaversineKm(tiananmen, tiananmen))

	// 方向无关
	require.InDelta(t, distance, HaversineKm(wangfujing, tiananmen), 1e-9)
}

func TestFallbackEstimate(t *testing.T) {
	calc := fallbackCalculator{speedKmh: 25}

	from := Point{Lat: 39.9087, Lng: 116.3975}
	to := Point{Lat: 39.9146, Lng: 116.4103}

	distanceKm, durationMinutes := calc.estimate(from, to)
	require.Equal(t, HaversineKm(from, to), distanceKm)
	require.InDelta(t, distanceKm/25*60, durationMinutes, 1e-9)
	require.Greater(t, durationMinutes, 0.0)
}

func TestFallbackEstimateZeroSpeed(t *testing.T) {
	// 速度配成 0 不能除零崩溃，耗时按无法估算处理
	calc := fallbackCalculator{speedKmh: 0}

	distanceKm, durationMinutes := calc.estimate(
		Point{Lat: 39.9087, Lng: 116.3975},
		Point{Lat: 39.9146, Lng: 116.4103},
	)
	require.Greater(t, distanceKm, 0.0)
	require.Zero(t, durationMinutes)
}

func TestFallbackRouteKeepsOrder(t *testing.T) {
	calc := fallbackCalculator{speedKmh: 25}

	origin := Point{Lat: 39.90, Lng: 116.39}
	w1 := Point{Lat: 39.91, Lng: 116.40}
	w2 := Point{Lat: 39.92, Lng: 116.41}
	w3 := Point{Lat: 39.93, Lng: 116.42}

	route := calc.route(origin, []Point{w1, w2, w3})
	require.Len(t, route.Legs, 3)
	require.Empty(t, route.Polyline)

	// 严格按输入顺序逐段连接：origin→W1, W1→W2, W2→W3
	require.Equal(t, origin, route.Legs[0].From)
	require.Equal(t, w1, route.Legs[0].To)
	require.Equal(t, w1, route.Legs[1].From)
	require.Equal(t, w2, route.Legs[1].To)
	require.Equal(t, w2, route.Legs[2].From)
	require.Equal(t, w3, route.Legs[2].To)

	require.Greater(t, route.TotalDistanceKm(), 0.0)
	require.Greater(t, route.TotalDurationMinutes(), 0.0)
}
