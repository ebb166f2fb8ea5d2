package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 运单指派事务 ====================

// AssignDeliveryTxParams contains the input parameters for assigning a delivery
type AssignDeliveryTxParams struct {
	DeliveryID      int64
	CourierID       int64
	DistanceKm      float64
	DurationMinutes float64
	EstimateSource  string // provider | estimated
}

// AssignDeliveryTxResult contains the result of the assign delivery transaction
type AssignDeliveryTxResult struct {
	Delivery   Delivery
	Assignment Assignment
}

// AssignDeliveryTx executes all operations for assigning a delivery in a single transaction:
// 1. Assign the delivery to the courier (only succeeds while it is still pending)
// 2. Increment the courier's delivery counter
// 3. Record the assignment with the estimate that produced it
func (store *SQLStore) AssignDeliveryTx(ctx context.Context, arg AssignDeliveryTxParams) (AssignDeliveryTxResult, error) {
	var result AssignDeliveryTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		distanceKm, err := numericFromFloat(arg.DistanceKm)
		if err != nil {
			return fmt.Errorf("convert distance: %w", err)
		}
		durationMinutes, err := numericFromFloat(arg.DurationMinutes)
		if err != nil {
			return fmt.Errorf("convert duration: %w", err)
		}

		// 1. 指派运单（status = 'pending' 条件保证不会重复指派）
		result.Delivery, err = q.AssignDelivery(ctx, AssignDeliveryParams{
			ID:              arg.DeliveryID,
			CourierID:       pgtype.Int8{Int64: arg.CourierID, Valid: true},
			DistanceKm:      distanceKm,
			DurationMinutes: durationMinutes,
			EstimateSource:  pgtype.Text{String: arg.EstimateSource, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("assign delivery: %w", err)
		}

		// 2. 累加骑手完成量
		err = q.IncrementCourierDeliveries(ctx, arg.CourierID)
		if err != nil {
			return fmt.Errorf("increment courier deliveries: %w", err)
		}

		// 3. 记录指派流水
		result.Assignment, err = q.CreateAssignment(ctx, CreateAssignmentParams{
			DeliveryID:      arg.DeliveryID,
			CourierID:       arg.CourierID,
			DistanceKm:      distanceKm,
			DurationMinutes: durationMinutes,
			EstimateSource:  arg.EstimateSource,
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		return nil
	})

	return result, err
}

// numericFromFloat converts a float64 into a pgtype.Numeric column value.
func numericFromFloat(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(fmt.Sprintf("%.3f", f)); err != nil {
		return n, err
	}
	return n, nil
}
