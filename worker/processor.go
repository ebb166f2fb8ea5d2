package worker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/routing"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor 任务处理接口
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskDispatchDelivery 处理运单调度任务
	ProcessTaskDispatchDelivery(ctx context.Context, task *asynq.Task) error
}

// RedisTaskProcessor 基于 Redis 的任务处理器
type RedisTaskProcessor struct {
	server    *asynq.Server
	store     db.Store
	estimator *routing.Estimator // 行程估算（调度打分用）
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	estimator *routing.Estimator,
) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	return &RedisTaskProcessor{
		server:    server,
		store:     store,
		estimator: estimator,
	}
}

// NewTestTaskProcessor 创建用于测试的处理器实例（不需要Redis连接）
func NewTestTaskProcessor(store db.Store, estimator *routing.Estimator) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:     store,
		estimator: estimator,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	// 注册任务处理器
	mux.HandleFunc(TaskDispatchDelivery, processor.ProcessTaskDispatchDelivery)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
