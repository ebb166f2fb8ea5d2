package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/routing"
	"github.com/merrydance/fleetops/worker"
	"github.com/rs/zerolog/log"
)

// ==================== 运单 ====================

type createDeliveryRequest struct {
	Reference        string    `json:"reference" binding:"required"`
	PickupAddress    string    `json:"pickup_address" binding:"required"`
	PickupLatitude   float64   `json:"pickup_latitude" binding:"required,min=-90,max=90"`
	PickupLongitude  float64   `json:"pickup_longitude" binding:"required,min=-180,max=180"`
	DropoffAddress   string    `json:"dropoff_address" binding:"required"`
	DropoffLatitude  float64   `json:"dropoff_latitude" binding:"required,min=-90,max=90"`
	DropoffLongitude float64   `json:"dropoff_longitude" binding:"required,min=-180,max=180"`
	ScheduledAt      time.Time `json:"scheduled_at"`
}

type deliveryResponse struct {
	ID               int64     `json:"id"`
	Reference        string    `json:"reference"`
	CourierID        int64     `json:"courier_id,omitempty"`
	PickupAddress    string    `json:"pickup_address"`
	PickupLatitude   float64   `json:"pickup_latitude"`
	PickupLongitude  float64   `json:"pickup_longitude"`
	DropoffAddress   string    `json:"dropoff_address"`
	DropoffLatitude  float64   `json:"dropoff_latitude"`
	DropoffLongitude float64   `json:"dropoff_longitude"`
	Status           string    `json:"status"`
	DistanceKm       float64   `json:"distance_km"`
	DurationMinutes  float64   `json:"duration_minutes"`
	EstimateSource   string    `json:"estimate_source,omitempty"`
	ScheduledAt      time.Time `json:"scheduled_at"`
}

func newDeliveryResponse(delivery db.Delivery) deliveryResponse {
	rsp := deliveryResponse{
		ID:               delivery.ID,
		Reference:        delivery.Reference,
		PickupAddress:    delivery.PickupAddress,
		PickupLatitude:   floatFromNumeric(delivery.PickupLatitude),
		PickupLongitude:  floatFromNumeric(delivery.PickupLongitude),
		DropoffAddress:   delivery.DropoffAddress,
		DropoffLatitude:  floatFromNumeric(delivery.DropoffLatitude),
		DropoffLongitude: floatFromNumeric(delivery.DropoffLongitude),
		Status:           delivery.Status,
		DistanceKm:       floatFromNumeric(delivery.DistanceKm),
		DurationMinutes:  floatFromNumeric(delivery.DurationMinutes),
		ScheduledAt:      delivery.ScheduledAt,
	}
	if delivery.CourierID.Valid {
		rsp.CourierID = delivery.CourierID.Int64
	}
	if delivery.EstimateSource.Valid {
		rsp.EstimateSource = delivery.EstimateSource.String
	}
	return rsp
}

// createDelivery 创建运单并排队调度
// POST /v1/deliveries
func (server *Server) createDelivery(ctx *gin.Context) {
	var req createDeliveryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pickupLat, err := numericFromFloat(req.PickupLatitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	pickupLng, err := numericFromFloat(req.PickupLongitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	dropoffLat, err := numericFromFloat(req.DropoffLatitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	dropoffLng, err := numericFromFloat(req.DropoffLongitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	scheduledAt := req.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = time.Now()
	}

	delivery, err := server.store.CreateDelivery(ctx, db.CreateDeliveryParams{
		Reference:        req.Reference,
		PickupAddress:    req.PickupAddress,
		PickupLatitude:   pickupLat,
		PickupLongitude:  pickupLng,
		DropoffAddress:   req.DropoffAddress,
		DropoffLatitude:  dropoffLat,
		DropoffLongitude: dropoffLng,
		ScheduledAt:      scheduledAt,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("delivery reference already exists")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordDeliveryCreated()

	// 排队自动调度；失败只记日志，运单保持 pending 可人工指派
	if server.taskDistributor != nil {
		taskPayload := &worker.PayloadDispatchDelivery{DeliveryID: delivery.ID}
		opts := []asynq.Option{
			asynq.MaxRetry(10),
			asynq.ProcessIn(time.Second),
			asynq.Queue(worker.QueueCritical),
		}
		if err := server.taskDistributor.DistributeTaskDispatchDelivery(ctx, taskPayload, opts...); err != nil {
			log.Warn().Err(err).
				Int64("delivery_id", delivery.ID).
				Msg("failed to enqueue dispatch task, delivery left pending")
		}
	}

	ctx.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

type getDeliveryRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getDelivery 查询运单
// GET /v1/deliveries/:id
func (server *Server) getDelivery(ctx *gin.Context) {
	var req getDeliveryRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	delivery, err := server.store.GetDelivery(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

type listPendingDeliveriesRequest struct {
	Limit int32 `form:"limit,default=20" binding:"min=1,max=100"`
}

// listPendingDeliveries 查询待调度运单
// GET /v1/deliveries/pending
func (server *Server) listPendingDeliveries(ctx *gin.Context) {
	var req listPendingDeliveriesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	deliveries, err := server.store.ListPendingDeliveries(ctx, req.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]deliveryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		rsp = append(rsp, newDeliveryResponse(delivery))
	}

	ctx.JSON(http.StatusOK, rsp)
}

type assignDeliveryRequest struct {
	CourierID int64 `json:"courier_id" binding:"required,min=1"`
}

// assignDelivery 人工指派运单给指定骑手
// POST /v1/deliveries/:id/assign
func (server *Server) assignDelivery(ctx *gin.Context) {
	var uri getDeliveryRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req assignDeliveryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	delivery, err := server.store.GetDelivery(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if delivery.Status != "pending" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("delivery is not pending")))
		return
	}

	if _, err := server.store.GetCourier(ctx, req.CourierID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	pickup := routing.Point{
		Lat: floatFromNumeric(delivery.PickupLatitude),
		Lng: floatFromNumeric(delivery.PickupLongitude),
	}
	dropoff := routing.Point{
		Lat: floatFromNumeric(delivery.DropoffLatitude),
		Lng: floatFromNumeric(delivery.DropoffLongitude),
	}

	// 估算运单行程，永不失败（provider 缺席时自动几何估算）
	trip := server.estimator.GetTravelTimes(ctx, []routing.Point{pickup}, []routing.Point{dropoff}, time.Now())

	estimateSource := worker.EstimateSourceEstimated
	if server.estimator.UsingProvider() {
		estimateSource = worker.EstimateSourceProvider
	}

	result, err := server.store.AssignDeliveryTx(ctx, db.AssignDeliveryTxParams{
		DeliveryID:      delivery.ID,
		CourierID:       req.CourierID,
		DistanceKm:      trip.DistancesKm[0][0],
		DurationMinutes: trip.DurationsMinutes[0][0],
		EstimateSource:  estimateSource,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordDeliveryAssigned(estimateSource)

	ctx.JSON(http.StatusOK, newDeliveryResponse(result.Delivery))
}
