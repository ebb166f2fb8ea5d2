package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskDispatchDelivery 分发运单调度任务
	DistributeTaskDispatchDelivery(
		ctx context.Context,
		payload *PayloadDispatchDelivery,
		opts ...asynq.Option,
	) error
}

// RedisTaskDistributor 基于 Redis 的任务分发器
type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
