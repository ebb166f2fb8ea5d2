package routing

import (
	"context"
	"time"
)

// ProviderClient 地图 provider 的窄接口
//
// 估算器只依赖这里的两个方法，具体 provider 的 JSON 结构在各自
// client 内消化掉，缓存/降级逻辑不感知任何 wire 格式。
type ProviderClient interface {
	// GetDistanceMatrix 一次请求批量计算 origins × destinations 全矩阵
	// 返回矩阵行列数与输入一致；单点不可达时对应元素 OK 为 false
	GetDistanceMatrix(ctx context.Context, origins, destinations []Point, departure time.Time) ([][]MatrixElement, error)

	// GetDirections 规划 origin 经过 waypoints 的顺序路线
	// optimize 为 true 时由 provider 决定途经点访问顺序
	GetDirections(ctx context.Context, origin Point, waypoints []Point, departure time.Time, optimize bool) (*Route, error)
}
