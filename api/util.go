package api

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericFromFloat 将 float64 转换为 pgtype.Numeric 列值
func numericFromFloat(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(fmt.Sprintf("%.6f", f)); err != nil {
		return n, err
	}
	return n, nil
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
