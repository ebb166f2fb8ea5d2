package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newMatrixTestServer(t *testing.T, handler http.HandlerFunc) (*GoogleClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewGoogleClient("test-key", time.Second).WithBaseURL(server.URL)
	return client, server
}

func TestGetDistanceMatrixConversion(t *testing.T) {
	var gotQuery map[string][]string

	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		// 5000 米 / 600 秒 → 5.0 公里 / 10.0 分钟
		w.Write([]byte(`{
			"status": "OK",
			"rows": [
				{"elements": [{"status": "OK", "distance": {"value": 5000}, "duration": {"value": 600}}]}
			]
		}`))
	})

	departure := time.Unix(1717243200, 0)
	rows, err := client.GetDistanceMatrix(context.Background(),
		[]Point{{Lat: 24.71364, Lng: 46.67531}},
		[]Point{{Lat: 24.77425, Lng: 46.73852}},
		departure,
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	require.True(t, rows[0][0].OK)
	require.Equal(t, 5.0, rows[0][0].DistanceKm)
	require.Equal(t, 10.0, rows[0][0].DurationMinutes)

	// 请求参数：竖线分隔的 "lat,lng" 列表 + unix 出发时间 + key
	require.Equal(t, "24.713640,46.675310", gotQuery["origins"][0])
	require.Equal(t, "24.774250,46.738520", gotQuery["destinations"][0])
	require.Equal(t, "1717243200", gotQuery["departure_time"][0])
	require.Equal(t, "test-key", gotQuery["key"][0])
}

func TestGetDistanceMatrixMultiplePoints(t *testing.T) {
	var gotOrigins string

	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotOrigins = r.URL.Query().Get("origins")
		w.Write([]byte(`{
			"status": "OK",
			"rows": [
				{"elements": [{"status": "OK", "distance": {"value": 1000}, "duration": {"value": 60}},
				              {"status": "OK", "distance": {"value": 2000}, "duration": {"value": 120}}]},
				{"elements": [{"status": "OK", "distance": {"value": 3000}, "duration": {"value": 180}},
				              {"status": "ZERO_RESULTS"}]}
			]
		}`))
	})

	rows, err := client.GetDistanceMatrix(context.Background(),
		[]Point{{Lat: 24.71, Lng: 46.67}, {Lat: 24.72, Lng: 46.68}},
		[]Point{{Lat: 24.73, Lng: 46.69}, {Lat: 24.74, Lng: 46.70}},
		time.Now(),
	)
	require.NoError(t, err)
	require.Equal(t, "24.710000,46.670000|24.720000,46.680000", gotOrigins)

	require.Equal(t, 2.0, rows[0][1].DistanceKm)
	require.Equal(t, 3.0, rows[1][0].DistanceKm)

	// 单点失败只标记该元素，不整体报错
	require.False(t, rows[1][1].OK)
}

func TestGetDistanceMatrixProviderStatusFailure(t *testing.T) {
	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "error_message": "quota exceeded", "rows": []}`))
	})

	_, err := client.GetDistanceMatrix(context.Background(),
		[]Point{{Lat: 24.71, Lng: 46.67}}, []Point{{Lat: 24.73, Lng: 46.69}}, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
}

func TestGetDistanceMatrixRowMismatch(t *testing.T) {
	// 行数对不上按响应残缺处理
	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "rows": []}`))
	})

	_, err := client.GetDistanceMatrix(context.Background(),
		[]Point{{Lat: 24.71, Lng: 46.67}}, []Point{{Lat: 24.73, Lng: 46.69}}, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "mismatch")
}

func TestGetDirectionsParsing(t *testing.T) {
	var gotWaypoints string

	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotWaypoints = r.URL.Query().Get("waypoints")
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "gbq_Ewo}dFvCkB"},
				"legs": [
					{"start_location": {"lat": 24.71, "lng": 46.67},
					 "end_location": {"lat": 24.72, "lng": 46.68},
					 "distance": {"value": 4200}, "duration": {"value": 540}},
					{"start_location": {"lat": 24.72, "lng": 46.68},
					 "end_location": {"lat": 24.73, "lng": 46.69},
					 "distance": {"value": 3100}, "duration": {"value": 420}}
				]
			}]
		}`))
	})

	route, err := client.GetDirections(context.Background(),
		Point{Lat: 24.71, Lng: 46.67},
		[]Point{{Lat: 24.72, Lng: 46.68}, {Lat: 24.73, Lng: 46.69}},
		time.Now(), true,
	)
	require.NoError(t, err)
	require.Len(t, route.Legs, 2)
	require.Equal(t, "gbq_Ewo}dFvCkB", route.Polyline)
	require.Equal(t, 4.2, route.Legs[0].DistanceKm)
	require.Equal(t, 9.0, route.Legs[0].DurationMinutes)
	require.Equal(t, Point{Lat: 24.72, Lng: 46.68}, route.Legs[1].From)

	// optimize 时途经点带 optimize:true 前缀
	require.Equal(t, "optimize:true|24.720000,46.680000", gotWaypoints)
}

func TestGetDirectionsNoRoute(t *testing.T) {
	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": []}`))
	})

	_, err := client.GetDirections(context.Background(),
		Point{Lat: 24.71, Lng: 46.67}, []Point{{Lat: 24.73, Lng: 46.69}}, time.Now(), false)
	require.Error(t, err)
}

func TestEstimatorWithGoogleClientFallsBackOnHTTPError(t *testing.T) {
	calls := 0
	client, _ := newMatrixTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	estimator := NewEstimator(client, Config{FallbackSpeedKmh: 25, Timeout: time.Second})

	origin := Point{Lat: 24.71364, Lng: 46.67531}
	destination := Point{Lat: 24.77425, Lng: 46.73852}
	matrix := estimator.GetTravelTimes(context.Background(), []Point{origin}, []Point{destination}, time.Now())

	require.Equal(t, 1, calls)
	require.InDelta(t, HaversineKm(origin, destination), matrix.DistancesKm[0][0], 1e-9)
}
