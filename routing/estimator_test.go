package routing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubProvider 可编程的 provider 替身，记录调用次数
type stubProvider struct {
	matrixCalls     int
	directionsCalls int

	matrixFn     func(origins, destinations []Point) ([][]MatrixElement, error)
	directionsFn func(origin Point, waypoints []Point, optimize bool) (*Route, error)
}

func (s *stubProvider) GetDistanceMatrix(_ context.Context, origins, destinations []Point, _ time.Time) ([][]MatrixElement, error) {
	s.matrixCalls++
	return s.matrixFn(origins, destinations)
}

func (s *stubProvider) GetDirections(_ context.Context, origin Point, waypoints []Point, _ time.Time, optimize bool) (*Route, error) {
	s.directionsCalls++
	return s.directionsFn(origin, waypoints, optimize)
}

// uniformMatrix 所有点对返回同一距离/耗时
func uniformMatrix(distanceKm, durationMinutes float64) func(origins, destinations []Point) ([][]MatrixElement, error) {
	return func(origins, destinations []Point) ([][]MatrixElement, error) {
		rows := make([][]MatrixElement, len(origins))
		for i := range origins {
			rows[i] = make([]MatrixElement, len(destinations))
			for j := range destinations {
				rows[i][j] = MatrixElement{DistanceKm: distanceKm, DurationMinutes: durationMinutes, OK: true}
			}
		}
		return rows, nil
	}
}

var (
	testP1 = Point{Lat: 24.71364, Lng: 46.67531}
	testP2 = Point{Lat: 24.77425, Lng: 46.73852}
	testP3 = Point{Lat: 24.69041, Lng: 46.68577}
)

func TestGetTravelTimesEmptyInput(t *testing.T) {
	provider := &stubProvider{matrixFn: uniformMatrix(1, 1)}
	estimator := NewEstimator(provider, Config{})
	departure := time.Now()

	// 任一输入为空：空矩阵，零 provider 调用
	matrix := estimator.GetTravelTimes(context.Background(), nil, []Point{testP2}, departure)
	require.Empty(t, matrix.DistancesKm)
	require.Empty(t, matrix.DurationsMinutes)

	matrix = estimator.GetTravelTimes(context.Background(), []Point{testP1}, nil, departure)
	require.Len(t, matrix.DistancesKm, 1)
	require.Empty(t, matrix.DistancesKm[0])

	require.Zero(t, provider.matrixCalls)
}

func TestGetTravelTimesColdThenWarmCache(t *testing.T) {
	// provider 返回 10000 米 / 1200 秒
	provider := &stubProvider{matrixFn: uniformMatrix(10.0, 20.0)}
	estimator := NewEstimator(provider, Config{})
	departure := time.Now()

	// 冷缓存：一次 provider 调用，单位已换算
	first := estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)
	require.Equal(t, 10.0, first.DistancesKm[0][0])
	require.Equal(t, 20.0, first.DurationsMinutes[0][0])
	require.Equal(t, 1, provider.matrixCalls)

	// 热缓存：结果一致，provider 调用数不变
	second := estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)
	require.Equal(t, first.DistancesKm, second.DistancesKm)
	require.Equal(t, first.DurationsMinutes, second.DurationsMinutes)
	require.Equal(t, 1, provider.matrixCalls)
}

func TestGetTravelTimesNoCredential(t *testing.T) {
	// 未配置 key：provider 为 nil，几何降级，零 HTTP 调用
	estimator := NewEstimator(nil, Config{FallbackSpeedKmh: 25})
	departure := time.Now()

	matrix := estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)

	wantKm := HaversineKm(testP1, testP2)
	require.InDelta(t, wantKm, matrix.DistancesKm[0][0], 1e-9)
	require.InDelta(t, wantKm/25*60, matrix.DurationsMinutes[0][0], 1e-9)
}

func TestGetTravelTimesTransportFailure(t *testing.T) {
	provider := &stubProvider{
		matrixFn: func([]Point, []Point) ([][]MatrixElement, error) {
			return nil, errors.New("connection refused")
		},
	}
	estimator := NewEstimator(provider, Config{FallbackSpeedKmh: 25})
	departure := time.Now()

	origins := []Point{testP1, testP3}
	destinations := []Point{testP2, testP3}
	matrix := estimator.GetTravelTimes(context.Background(), origins, destinations, departure)
	require.Equal(t, 1, provider.matrixCalls)

	// 整个矩阵统一降级，不允许真假混杂
	for i, origin := range origins {
		for j, destination := range destinations {
			require.InDelta(t, HaversineKm(origin, destination), matrix.DistancesKm[i][j], 1e-9)
		}
	}

	// provider 失败不污染缓存：下一次调用会再打 provider
	estimator.GetTravelTimes(context.Background(), origins, destinations, departure)
	require.Equal(t, 2, provider.matrixCalls)
}

func TestGetTravelTimesPerPairFailure(t *testing.T) {
	provider := &stubProvider{
		matrixFn: func(origins, destinations []Point) ([][]MatrixElement, error) {
			rows, _ := uniformMatrix(10.0, 20.0)(origins, destinations)
			// 单点失败：origin 0 → destination 1 不可达
			rows[0][1] = MatrixElement{OK: false}
			return rows, nil
		},
	}
	estimator := NewEstimator(provider, Config{FallbackSpeedKmh: 25})
	departure := time.Now()

	origins := []Point{testP1, testP3}
	destinations := []Point{testP2, testP3}
	matrix := estimator.GetTravelTimes(context.Background(), origins, destinations, departure)

	// 只有这一格是几何估算
	require.InDelta(t, HaversineKm(testP1, testP3), matrix.DistancesKm[0][1], 1e-9)

	// 其余单元格保留 provider 数值
	require.Equal(t, 10.0, matrix.DistancesKm[0][0])
	require.Equal(t, 10.0, matrix.DistancesKm[1][0])
	require.Equal(t, 10.0, matrix.DistancesKm[1][1])
	require.Equal(t, 20.0, matrix.DurationsMinutes[1][1])
}

func TestGetTravelTimesFailedPairNotCached(t *testing.T) {
	provider := &stubProvider{
		matrixFn: func(origins, destinations []Point) ([][]MatrixElement, error) {
			return [][]MatrixElement{{{OK: false}}}, nil
		},
	}
	estimator := NewEstimator(provider, Config{})
	departure := time.Now()

	estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)
	require.Equal(t, 1, provider.matrixCalls)

	// 失败的点对没有写缓存，第二次仍然打 provider
	estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)
	require.Equal(t, 2, provider.matrixCalls)
}

func TestGetTravelTimesCacheExpiry(t *testing.T) {
	provider := &stubProvider{matrixFn: uniformMatrix(10.0, 20.0)}
	estimator := NewEstimator(provider, Config{CacheTTL: 10 * time.Millisecond})
	departure := time.Now()

	estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)
	require.Equal(t, 1, provider.matrixCalls)

	time.Sleep(20 * time.Millisecond)

	// TTL 过期后重新请求 provider
	estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2}, departure)
	require.Equal(t, 2, provider.matrixCalls)
}

func TestGetRouteEmptyWaypoints(t *testing.T) {
	provider := &stubProvider{}
	estimator := NewEstimator(provider, Config{})

	route := estimator.GetRoute(context.Background(), testP1, nil, time.Now(), false)
	require.Empty(t, route.Legs)
	require.Empty(t, route.Polyline)
	require.Zero(t, provider.directionsCalls)
}

func TestGetRouteNoCredential(t *testing.T) {
	estimator := NewEstimator(nil, Config{FallbackSpeedKmh: 25})

	route := estimator.GetRoute(context.Background(), testP1, []Point{testP2, testP3}, time.Now(), true)
	require.Len(t, route.Legs, 2)
	require.Empty(t, route.Polyline)
	require.Equal(t, testP1, route.Legs[0].From)
	require.Equal(t, testP2, route.Legs[0].To)
	require.Equal(t, testP2, route.Legs[1].From)
	require.Equal(t, testP3, route.Legs[1].To)
}

func TestGetRouteProviderSuccess(t *testing.T) {
	want := &Route{
		Legs: []RouteLeg{
			{From: testP1, To: testP2, DistanceKm: 8.2, DurationMinutes: 17.5},
			{From: testP2, To: testP3, DistanceKm: 11.4, DurationMinutes: 24.0},
		},
		Polyline: "gbq`Ewo}dFvCkB",
	}
	provider := &stubProvider{
		directionsFn: func(Point, []Point, bool) (*Route, error) {
			return want, nil
		},
	}
	estimator := NewEstimator(provider, Config{})

	route := estimator.GetRoute(context.Background(), testP1, []Point{testP2, testP3}, time.Now(), false)
	require.Equal(t, want, route)
	require.Equal(t, 1, provider.directionsCalls)
}

func TestGetRouteFallbackKeepsOrder(t *testing.T) {
	provider := &stubProvider{
		directionsFn: func(Point, []Point, bool) (*Route, error) {
			return nil, errors.New("timeout")
		},
	}
	estimator := NewEstimator(provider, Config{FallbackSpeedKmh: 25})

	w1 := Point{Lat: 24.72, Lng: 46.68}
	w2 := Point{Lat: 24.73, Lng: 46.69}
	w3 := Point{Lat: 24.74, Lng: 46.70}

	// optimize 标志不影响降级：降级永远按输入顺序
	for _, optimize := range []bool{false, true} {
		route := estimator.GetRoute(context.Background(), testP1, []Point{w1, w2, w3}, time.Now(), optimize)
		require.Len(t, route.Legs, 3)
		require.Equal(t, testP1, route.Legs[0].From)
		require.Equal(t, w1, route.Legs[0].To)
		require.Equal(t, w1, route.Legs[1].From)
		require.Equal(t, w2, route.Legs[1].To)
		require.Equal(t, w2, route.Legs[2].From)
		require.Equal(t, w3, route.Legs[2].To)
		require.Empty(t, route.Polyline)
	}
}

func TestEvictExpired(t *testing.T) {
	provider := &stubProvider{matrixFn: uniformMatrix(10.0, 20.0)}
	estimator := NewEstimator(provider, Config{CacheTTL: 10 * time.Millisecond})

	estimator.GetTravelTimes(context.Background(), []Point{testP1}, []Point{testP2, testP3}, time.Now())
	require.Equal(t, 2, estimator.CacheSize())

	time.Sleep(20 * time.Millisecond)

	require.Equal(t, 2, estimator.EvictExpired())
	require.Equal(t, 0, estimator.CacheSize())
}
