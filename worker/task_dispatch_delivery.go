package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/fleetops/algorithm"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/routing"
	"github.com/rs/zerolog/log"
)

const (
	TaskDispatchDelivery = "dispatch:assign_delivery"

	EstimateSourceProvider  = "provider"
	EstimateSourceEstimated = "estimated"
)

// PayloadDispatchDelivery 运单调度任务载荷
type PayloadDispatchDelivery struct {
	DeliveryID int64 `json:"delivery_id"`
}

// DistributeTaskDispatchDelivery 分发运单调度任务
func (d *RedisTaskDistributor) DistributeTaskDispatchDelivery(
	ctx context.Context,
	payload *PayloadDispatchDelivery,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskDispatchDelivery, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Int64("delivery_id", payload.DeliveryID).
		Msg("enqueued dispatch delivery task")

	return nil
}

// ProcessTaskDispatchDelivery 处理运单调度任务：
// 1. 加载待调度运单
// 2. 召回在线骑手并按直线距离预筛
// 3. 批量估算骑手到取货点的耗时，按耗时加负载惩罚排序
// 4. 将运单指派给最优骑手（事务内写入指派流水）
func (p *RedisTaskProcessor) ProcessTaskDispatchDelivery(ctx context.Context, task *asynq.Task) error {
	var payload PayloadDispatchDelivery
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	delivery, err := p.store.GetDelivery(ctx, payload.DeliveryID)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}

	// 已被人工指派或取消的运单直接跳过
	if delivery.Status != "pending" {
		log.Info().
			Int64("delivery_id", delivery.ID).
			Str("status", delivery.Status).
			Msg("delivery is not pending, skip dispatch")
		return nil
	}

	pickup := routing.Point{
		Lat: floatFromNumeric(delivery.PickupLatitude),
		Lng: floatFromNumeric(delivery.PickupLongitude),
	}
	dropoff := routing.Point{
		Lat: floatFromNumeric(delivery.DropoffLatitude),
		Lng: floatFromNumeric(delivery.DropoffLongitude),
	}

	couriers, err := p.store.ListOnlineCouriers(ctx)
	if err != nil {
		return fmt.Errorf("list online couriers: %w", err)
	}

	candidates := make([]algorithm.Candidate, 0, len(couriers))
	for _, courier := range couriers {
		active, err := p.store.CountCourierActiveDeliveries(ctx, pgtype.Int8{Int64: courier.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("count courier active deliveries: %w", err)
		}
		candidates = append(candidates, algorithm.Candidate{
			CourierID: courier.ID,
			Location: routing.Point{
				Lat: floatFromNumeric(courier.CurrentLatitude),
				Lng: floatFromNumeric(courier.CurrentLongitude),
			},
			ActiveDeliveries: int(active),
		})
	}

	candidates = algorithm.FilterByRadius(candidates, pickup, algorithm.DefaultCandidateRadiusKm)
	if len(candidates) == 0 {
		// 返回错误让 asynq 按退避重试，等骑手上线
		return fmt.Errorf("no online courier within radius for delivery %d", delivery.ID)
	}

	// 骑手 → 取货点耗时矩阵（单列）
	origins := make([]routing.Point, len(candidates))
	for i, c := range candidates {
		origins[i] = c.Location
	}
	matrix := p.estimator.GetTravelTimes(ctx, origins, []routing.Point{pickup}, time.Now())

	distances := make([]float64, len(candidates))
	durations := make([]float64, len(candidates))
	for i := range candidates {
		distances[i] = matrix.DistancesKm[i][0]
		durations[i] = matrix.DurationsMinutes[i][0]
	}

	scored := algorithm.RankCandidates(candidates, distances, durations)
	best := scored[0]

	// 运单行程（取货点 → 送达点）作为指派记录的估算值
	trip := p.estimator.GetTravelTimes(ctx, []routing.Point{pickup}, []routing.Point{dropoff}, time.Now())

	estimateSource := EstimateSourceEstimated
	if p.estimator.UsingProvider() {
		estimateSource = EstimateSourceProvider
	}

	result, err := p.store.AssignDeliveryTx(ctx, db.AssignDeliveryTxParams{
		DeliveryID:      delivery.ID,
		CourierID:       best.CourierID,
		DistanceKm:      trip.DistancesKm[0][0],
		DurationMinutes: trip.DurationsMinutes[0][0],
		EstimateSource:  estimateSource,
	})
	if err != nil {
		return fmt.Errorf("assign delivery tx: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Int64("delivery_id", result.Delivery.ID).
		Int64("courier_id", best.CourierID).
		Float64("approach_minutes", best.DurationMinutes).
		Str("estimate_source", estimateSource).
		Msg("delivery assigned")

	return nil
}

// floatFromNumeric 将 pgtype.Numeric 列值还原为 float64
// 列为 NULL 或转换失败时返回 0
func floatFromNumeric(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	v, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return v.Float64
}
