package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	googleBaseURL = "https://maps.googleapis.com/maps/api"

	// 距离矩阵（批量多对多）
	distanceMatrixPath = "/distancematrix/json"

	// 路径规划
	directionsPath = "/directions/json"

	statusOK = "OK"

	// DefaultProviderTimeout provider 请求默认超时
	DefaultProviderTimeout = 30 * time.Second
)

// GoogleClient Google 地图 WebService 客户端
type GoogleClient struct {
	key        string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleClient 创建 Google 地图客户端
func NewGoogleClient(key string, timeout time.Duration) *GoogleClient {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &GoogleClient{
		key:     key,
		baseURL: googleBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithBaseURL 覆盖请求地址（测试用）
func (c *GoogleClient) WithBaseURL(baseURL string) *GoogleClient {
	c.baseURL = baseURL
	return c
}

// ==================== API 响应结构 ====================

type matrixAPIResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // 米
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // 秒
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
	ErrorMessage string `json:"error_message"`
}

type directionsAPIResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			StartLocation struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"start_location"`
			EndLocation struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"end_location"`
			Distance struct {
				Value int `json:"value"` // 米
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // 秒
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
	ErrorMessage string `json:"error_message"`
}

// ==================== 距离矩阵 ====================

// GetDistanceMatrix 批量计算距离（多对多，一次请求）
func (c *GoogleClient) GetDistanceMatrix(ctx context.Context, origins, destinations []Point, departure time.Time) ([][]MatrixElement, error) {
	params := url.Values{}
	params.Set("origins", joinPoints(origins))
	params.Set("destinations", joinPoints(destinations))
	params.Set("departure_time", strconv.FormatInt(departure.Unix(), 10))
	params.Set("units", "metric")
	params.Set("key", c.key)

	reqURL := c.baseURL + distanceMatrixPath + "?" + params.Encode()

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var resp matrixAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal matrix response: %w", err)
	}

	if resp.Status != statusOK {
		return nil, fmt.Errorf("matrix API error: %s (status=%s)", resp.ErrorMessage, resp.Status)
	}

	// 行列数必须和请求一致，对不上说明响应残缺，不能只信一半
	if len(resp.Rows) != len(origins) {
		return nil, fmt.Errorf("matrix row count mismatch: got %d, want %d", len(resp.Rows), len(origins))
	}

	matrix := make([][]MatrixElement, len(origins))
	for i, row := range resp.Rows {
		if len(row.Elements) != len(destinations) {
			return nil, fmt.Errorf("matrix element count mismatch at row %d: got %d, want %d",
				i, len(row.Elements), len(destinations))
		}

		matrix[i] = make([]MatrixElement, len(destinations))
		for j, elem := range row.Elements {
			if elem.Status != statusOK {
				matrix[i][j] = MatrixElement{OK: false}
				continue
			}
			matrix[i][j] = MatrixElement{
				DistanceKm:      float64(elem.Distance.Value) / 1000.0,
				DurationMinutes: float64(elem.Duration.Value) / 60.0,
				OK:              true,
			}
		}
	}

	return matrix, nil
}

// ==================== 路径规划 ====================

// GetDirections 规划多点顺序路线
// waypoints 最后一个点是终点，其余为途经点
func (c *GoogleClient) GetDirections(ctx context.Context, origin Point, waypoints []Point, departure time.Time, optimize bool) (*Route, error) {
	if len(waypoints) == 0 {
		return &Route{}, nil
	}

	destination := waypoints[len(waypoints)-1]
	intermediate := waypoints[:len(waypoints)-1]

	params := url.Values{}
	params.Set("origin", origin.String())
	params.Set("destination", destination.String())
	params.Set("departure_time", strconv.FormatInt(departure.Unix(), 10))
	params.Set("units", "metric")
	params.Set("key", c.key)

	if len(intermediate) > 0 {
		value := joinPoints(intermediate)
		if optimize {
			value = "optimize:true|" + value
		}
		params.Set("waypoints", value)
	}

	reqURL := c.baseURL + directionsPath + "?" + params.Encode()

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var resp directionsAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal directions response: %w", err)
	}

	if resp.Status != statusOK {
		return nil, fmt.Errorf("directions API error: %s (status=%s)", resp.ErrorMessage, resp.Status)
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	best := resp.Routes[0]
	route := &Route{
		Legs: make([]RouteLeg, 0, len(best.Legs)),
		// 编码路径串原样透传，本服务不解码
		Polyline: best.OverviewPolyline.Points,
	}
	for _, leg := range best.Legs {
		route.Legs = append(route.Legs, RouteLeg{
			From:            Point{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			To:              Point{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
			DistanceKm:      float64(leg.Distance.Value) / 1000.0,
			DurationMinutes: float64(leg.Duration.Value) / 60.0,
		})
	}

	return route, nil
}

// ==================== HTTP 请求 ====================

func (c *GoogleClient) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status: %s", resp.Status)
	}

	return body, nil
}

// joinPoints 坐标列表拼成 "lat,lng|lat,lng" 形式
func joinPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}

// 确保实现接口
var _ ProviderClient = (*GoogleClient)(nil)
