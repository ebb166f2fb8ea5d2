package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/fleetops/algorithm"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/routing"
)

// ==================== 调度 ====================

type listDispatchCandidatesRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dispatchCandidateResponse struct {
	CourierID        int64   `json:"courier_id"`
	DistanceKm       float64 `json:"distance_km"`
	DurationMinutes  float64 `json:"duration_minutes"`
	ActiveDeliveries int     `json:"active_deliveries"`
	Score            float64 `json:"score"`
}

// listDispatchCandidates 按取货耗时排序返回候选骑手
// GET /v1/dispatch/deliveries/:id/candidates
func (server *Server) listDispatchCandidates(ctx *gin.Context) {
	var req listDispatchCandidatesRequest
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

	pickup := routing.Point{
		Lat: floatFromNumeric(delivery.PickupLatitude),
		Lng: floatFromNumeric(delivery.PickupLongitude),
	}

	couriers, err := server.store.ListOnlineCouriers(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	candidates := make([]algorithm.Candidate, 0, len(couriers))
	for _, courier := range couriers {
		active, err := server.store.CountCourierActiveDeliveries(ctx, pgtype.Int8{Int64: courier.ID, Valid: true})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
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
		ctx.JSON(http.StatusOK, []dispatchCandidateResponse{})
		return
	}

	origins := make([]routing.Point, len(candidates))
	for i, c := range candidates {
		origins[i] = c.Location
	}
	matrix := server.estimator.GetTravelTimes(ctx, origins, []routing.Point{pickup}, time.Now())

	distances := make([]float64, len(candidates))
	durations := make([]float64, len(candidates))
	for i := range candidates {
		distances[i] = matrix.DistancesKm[i][0]
		durations[i] = matrix.DurationsMinutes[i][0]
	}

	scored := algorithm.RankCandidates(candidates, distances, durations)

	rsp := make([]dispatchCandidateResponse, 0, len(scored))
	for _, s := range scored {
		rsp = append(rsp, dispatchCandidateResponse{
			CourierID:        s.CourierID,
			DistanceKm:       s.DistanceKm,
			DurationMinutes:  s.DurationMinutes,
			ActiveDeliveries: s.ActiveDeliveries,
			Score:            s.Score,
		})
	}

	ctx.JSON(http.StatusOK, rsp)
}

type planRoutePoint struct {
	Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type planRouteRequest struct {
	Origin    planRoutePoint   `json:"origin" binding:"required"`
	Waypoints []planRoutePoint `json:"waypoints" binding:"required,min=1,max=23,dive"`
	Optimize  bool             `json:"optimize"`
}

type routeLegResponse struct {
	FromLatitude    float64 `json:"from_latitude"`
	FromLongitude   float64 `json:"from_longitude"`
	ToLatitude      float64 `json:"to_latitude"`
	ToLongitude     float64 `json:"to_longitude"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}

type planRouteResponse struct {
	Legs                 []routeLegResponse `json:"legs"`
	Polyline             string             `json:"polyline,omitempty"`
	TotalDistanceKm      float64            `json:"total_distance_km"`
	TotalDurationMinutes float64            `json:"total_duration_minutes"`
}

// planRoute 多点顺序路线规划（连送场景）
// POST /v1/dispatch/route
func (server *Server) planRoute(ctx *gin.Context) {
	var req planRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	origin := routing.Point{Lat: req.Origin.Latitude, Lng: req.Origin.Longitude}
	waypoints := make([]routing.Point, len(req.Waypoints))
	for i, wp := range req.Waypoints {
		waypoints[i] = routing.Point{Lat: wp.Latitude, Lng: wp.Longitude}
	}

	route := server.estimator.GetRoute(ctx, origin, waypoints, time.Now(), req.Optimize)

	legs := make([]routeLegResponse, 0, len(route.Legs))
	for _, leg := range route.Legs {
		legs = append(legs, routeLegResponse{
			FromLatitude:    leg.From.Lat,
			FromLongitude:   leg.From.Lng,
			ToLatitude:      leg.To.Lat,
			ToLongitude:     leg.To.Lng,
			DistanceKm:      leg.DistanceKm,
			DurationMinutes: leg.DurationMinutes,
		})
	}

	ctx.JSON(http.StatusOK, planRouteResponse{
		Legs:                 legs,
		Polyline:             route.Polyline,
		TotalDistanceKm:      route.TotalDistanceKm(),
		TotalDurationMinutes: route.TotalDurationMinutes(),
	})
}
