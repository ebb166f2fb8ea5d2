package routing

import "fmt"

// Point 地理坐标（度）
type Point struct {
	Lat float64 `json:"lat"` // 纬度
	Lng float64 `json:"lng"` // 经度
}

// String 返回 "纬度,经度" 格式
func (p Point) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// DistanceMatrix 批量行程估算结果
// 两个矩阵维度均为 len(origins) × len(destinations)，所有单元格保证有值
type DistanceMatrix struct {
	DurationsMinutes [][]float64 `json:"durations_minutes"`
	DistancesKm      [][]float64 `json:"distances_km"`
}

// NewDistanceMatrix 创建全零矩阵
func NewDistanceMatrix(rows, cols int) *DistanceMatrix {
	m := &DistanceMatrix{
		DurationsMinutes: make([][]float64, rows),
		DistancesKm:      make([][]float64, rows),
	}
	for i := 0; i < rows; i++ {
		m.DurationsMinutes[i] = make([]float64, cols)
		m.DistancesKm[i] = make([]float64, cols)
	}
	return m
}

// RouteLeg 路线中相邻两点之间的一段
type RouteLeg struct {
	From            Point   `json:"from"`
	To              Point   `json:"to"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// Route 多点顺序路线结果
// Polyline 为 provider 返回的编码路径串，降级估算时为空（几何估算没有真实路径）
type Route struct {
	Legs     []RouteLeg `json:"legs"`
	Polyline string     `json:"polyline,omitempty"`
}

// TotalDistanceKm 路线总里程
func (r *Route) TotalDistanceKm() float64 {
	var total float64
	for _, leg := range r.Legs {
		total += leg.DistanceKm
	}
	return total
}

// TotalDurationMinutes 路线总耗时
func (r *Route) TotalDurationMinutes() float64 {
	var total float64
	for _, leg := range r.Legs {
		total += leg.DurationMinutes
	}
	return total
}

// MatrixElement provider 返回的单个 origin→destination 结果
// OK 为 false 表示该点对不可达（provider 整体成功但单点失败）
type MatrixElement struct {
	DistanceKm      float64
	DurationMinutes float64
	OK              bool
}
