package algorithm

import (
	"sort"

	"github.com/merrydance/fleetops/routing"
)

const (
	// 每单在手配送的耗时惩罚（分钟）
	// 手上有单的骑手就算更近也要让位给空闲骑手
	activeLoadPenaltyMinutes = 8.0

	// 候选召回半径（公里），直线距离超过即不参与排序
	DefaultCandidateRadiusKm = 10.0
)

// Candidate 参与调度排序的骑手候选
type Candidate struct {
	CourierID        int64
	Location         routing.Point
	ActiveDeliveries int // 当前在手配送单数
}

// ScoredCandidate 排序后的候选
type ScoredCandidate struct {
	CourierID        int64
	DistanceKm       float64 // 到取货点的行程距离
	DurationMinutes  float64 // 到取货点的行程耗时
	ActiveDeliveries int
	Score            float64 // 越小越优
}

// RankCandidates 按取货耗时加负载惩罚给候选排序
//
// durations/distances 是估算服务返回矩阵中以取货点为目的地的一列，
// 下标与 candidates 对齐。排序稳定：分数相同保持输入顺序。
func RankCandidates(candidates []Candidate, distancesKm, durationsMinutes []float64) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for i, c := range candidates {
		score := durationsMinutes[i] + float64(c.ActiveDeliveries)*activeLoadPenaltyMinutes
		scored = append(scored, ScoredCandidate{
			CourierID:        c.CourierID,
			DistanceKm:       distancesKm[i],
			DurationMinutes:  durationsMinutes[i],
			ActiveDeliveries: c.ActiveDeliveries,
			Score:            score,
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score < scored[b].Score
	})

	return scored
}

// FilterByRadius 按直线距离预筛候选，控制估算矩阵的规模
func FilterByRadius(candidates []Candidate, pickup routing.Point, radiusKm float64) []Candidate {
	if radiusKm <= 0 {
		radiusKm = DefaultCandidateRadiusKm
	}

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if routing.HaversineKm(c.Location, pickup) <= radiusKm {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
