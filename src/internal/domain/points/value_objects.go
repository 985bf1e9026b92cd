package points

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PointsAmount 積分數量值對象
// 設計原則：值對象不可變、自我驗證
type PointsAmount struct {
	value int64
}

// NewPointsAmount 建構函數（checked 版本）
//
// 建構約束：積分數量必須 >= 0（不存在負數積分的概念）
func NewPointsAmount(value int64) (PointsAmount, error) {
	if value < 0 {
		return PointsAmount{}, fmt.Errorf(
			"%w: attempted to create PointsAmount with value %d",
			ErrNegativePointsAmount,
			value,
		)
	}
	return PointsAmount{value: value}, nil
}

// ParsePointsAmount 從命令參數解析積分數量
//
// 錯誤：
// - 非整數 → ErrInvalidPointsAmount
// - 負數   → ErrNegativePointsAmount
func ParsePointsAmount(s string) (PointsAmount, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return PointsAmount{}, ErrInvalidPointsAmount.WithContext(
			"input", s,
			"parse_error", err.Error(),
		)
	}
	return NewPointsAmount(value)
}

// newPointsAmountUnchecked 內部建構函數（unchecked 版本）
// 前提條件：調用者必須保證 value >= 0
func newPointsAmountUnchecked(value int64) PointsAmount {
	return PointsAmount{value: value}
}

// Value 獲取積分數量
func (p PointsAmount) Value() int64 {
	return p.value
}

// IsZero 是否為零
func (p PointsAmount) IsZero() bool {
	return p.value == 0
}

// Add 相加（返回新的 PointsAmount，保持不變性）
//
// 加總超過 int64 上限時返回 ErrPointsOverflow；
// /add_points 沒有業務上限，溢位是唯一會被拒絕的情況。
func (p PointsAmount) Add(other PointsAmount) (PointsAmount, error) {
	if other.value > math.MaxInt64-p.value {
		return PointsAmount{}, ErrPointsOverflow.WithContext(
			"current", p.value,
			"adding", other.value,
		)
	}
	return newPointsAmountUnchecked(p.value + other.value), nil
}

// Subtract 相減（返回新的 PointsAmount）
// 業務規則：不能扣除超過當前數量的積分
func (p PointsAmount) Subtract(other PointsAmount) (PointsAmount, error) {
	if p.value < other.value {
		return PointsAmount{}, fmt.Errorf(
			"%w: cannot subtract %d from %d (insufficient balance)",
			ErrInsufficientPoints,
			other.value,
			p.value,
		)
	}
	return newPointsAmountUnchecked(p.value - other.value), nil
}

// Equals 比較兩個 PointsAmount 是否相等
func (p PointsAmount) Equals(other PointsAmount) bool {
	return p.value == other.value
}

// GreaterThan 判斷是否大於另一個 PointsAmount
func (p PointsAmount) GreaterThan(other PointsAmount) bool {
	return p.value > other.value
}

// LessThan 判斷是否小於另一個 PointsAmount
func (p PointsAmount) LessThan(other PointsAmount) bool {
	return p.value < other.value
}

// String 實作 fmt.Stringer
func (p PointsAmount) String() string {
	return strconv.FormatInt(p.value, 10)
}
