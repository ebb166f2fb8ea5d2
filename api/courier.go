package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/token"
)

// ==================== 骑手档案 ====================

type createCourierRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Phone       string `json:"phone" binding:"required,validPhone"`
	VehicleType string `json:"vehicle_type" binding:"required,validVehicleType"`
}

type courierResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	FullName         string  `json:"full_name"`
	Phone            string  `json:"phone"`
	VehicleType      string  `json:"vehicle_type"`
	Status           string  `json:"status"`
	IsOnline         bool    `json:"is_online"`
	CurrentLatitude  float64 `json:"current_latitude"`
	CurrentLongitude float64 `json:"current_longitude"`
	TotalDeliveries  int32   `json:"total_deliveries"`
}

func newCourierResponse(courier db.Courier) courierResponse {
	return courierResponse{
		ID:               courier.ID,
		UserID:           courier.UserID,
		FullName:         courier.FullName,
		Phone:            courier.Phone,
		VehicleType:      courier.VehicleType,
		Status:           courier.Status,
		IsOnline:         courier.IsOnline,
		CurrentLatitude:  floatFromNumeric(courier.CurrentLatitude),
		CurrentLongitude: floatFromNumeric(courier.CurrentLongitude),
		TotalDeliveries:  courier.TotalDeliveries,
	}
}

// createCourier 创建骑手档案（绑定当前登录用户）
// POST /v1/couriers
func (server *Server) createCourier(ctx *gin.Context) {
	var req createCourierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	courier, err := server.store.CreateCourier(ctx, db.CreateCourierParams{
		UserID:      authPayload.UserID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("courier profile already exists")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

type getCourierRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getCourier 查询骑手档案
// GET /v1/couriers/:id
func (server *Server) getCourier(ctx *gin.Context) {
	var req getCourierRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, err := server.store.GetCourier(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

type updateCourierLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// updateCourierLocation 骑手位置上报
// PATCH /v1/couriers/:id/location
func (server *Server) updateCourierLocation(ctx *gin.Context) {
	var uri getCourierRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateCourierLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	lat, err := numericFromFloat(req.Latitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	lng, err := numericFromFloat(req.Longitude)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, err := server.store.UpdateCourierLocation(ctx, db.UpdateCourierLocationParams{
		ID:               uri.ID,
		CurrentLatitude:  lat,
		CurrentLongitude: lng,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

type setCourierOnlineRequest struct {
	IsOnline *bool `json:"is_online" binding:"required"`
}

// setCourierOnline 骑手上线/下线
// PATCH /v1/couriers/:id/online
func (server *Server) setCourierOnline(ctx *gin.Context) {
	var uri getCourierRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req setCourierOnlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, err := server.store.SetCourierOnline(ctx, db.SetCourierOnlineParams{
		ID:       uri.ID,
		IsOnline: *req.IsOnline,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

// listOnlineCouriers 查询当前在线骑手
// GET /v1/couriers/online
func (server *Server) listOnlineCouriers(ctx *gin.Context) {
	couriers, err := server.store.ListOnlineCouriers(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]courierResponse, 0, len(couriers))
	for _, courier := range couriers {
		rsp = append(rsp, newCourierResponse(courier))
	}

	ctx.JSON(http.StatusOK, rsp)
}
