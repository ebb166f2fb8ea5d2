package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/routing"
	"github.com/merrydance/fleetops/token"
	"github.com/merrydance/fleetops/util"
	"github.com/merrydance/fleetops/worker"
	"github.com/rs/zerolog/log"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the fleet dispatch service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	estimator       *routing.Estimator // 行程估算（provider 未配置时自动几何降级）
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
// estimator 与 worker 共享同一个实例，缓存只有一套。
func NewServer(config util.Config, store db.Store, estimator *routing.Estimator, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		estimator:       estimator,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

func (server *Server) setupRouter() {
	// 生产环境设置 Release 模式
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 注册自定义验证器
	registerCustomValidators()

	// Prometheus 指标中间件
	router.Use(PrometheusMiddleware())

	// 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 全局超时中间件：防止慢查询、外部API卡死导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// Prometheus 指标端点（供监控系统抓取）
	router.GET("/metrics", MetricsHandler())

	// 健康检查端点（供 Nginx/K8s 使用，无需认证）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	// API v1
	v1 := router.Group("/v1")

	authRoutes := v1.Group("/").Use(authMiddleware(server.tokenMaker))

	// 骑手档案与状态
	authRoutes.POST("/couriers", server.createCourier)
	authRoutes.GET("/couriers/:id", server.getCourier)
	authRoutes.PATCH("/couriers/:id/location", server.updateCourierLocation)
	authRoutes.PATCH("/couriers/:id/online", server.setCourierOnline)
	authRoutes.GET("/couriers/online", server.listOnlineCouriers)

	// 运单
	authRoutes.POST("/deliveries", server.createDelivery)
	authRoutes.GET("/deliveries/:id", server.getDelivery)
	authRoutes.GET("/deliveries/pending", server.listPendingDeliveries)
	authRoutes.POST("/deliveries/:id/assign", server.assignDelivery)

	// 调度：候选骑手排序与路线规划
	authRoutes.GET("/dispatch/deliveries/:id/candidates", server.listDispatchCandidates)
	authRoutes.POST("/dispatch/route", server.planRoute)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "fleetops-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	// 检查数据库连接
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "fleetops-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
