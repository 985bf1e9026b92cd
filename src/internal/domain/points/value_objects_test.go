package points_test

import (
	"math"
	"testing"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== PointsAmount 測試 =====

func TestNewPointsAmount_ValidValue_ReturnsPointsAmount(t *testing.T) {
	// Act
	amount, err := points.NewPointsAmount(100)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(100), amount.Value())
}

func TestNewPointsAmount_NegativeValue_ReturnsError(t *testing.T) {
	// Act
	amount, err := points.NewPointsAmount(-10)

	// Assert
	assert.ErrorIs(t, err, points.ErrNegativePointsAmount)
	assert.Equal(t, int64(0), amount.Value())
	assert.Contains(t, err.Error(), "value -10")
}

func TestParsePointsAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"正整數", "30", 30, nil},
		{"零", "0", 0, nil},
		{"前後空白", " 5 ", 5, nil},
		{"負數", "-5", 0, points.ErrNegativePointsAmount},
		{"非整數", "ten", 0, points.ErrInvalidPointsAmount},
		{"小數", "2.5", 0, points.ErrInvalidPointsAmount},
		{"空字串", "", 0, points.ErrInvalidPointsAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := points.ParsePointsAmount(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, amount.Value())
		})
	}
}

func TestPointsAmount_Add_ReturnsNewPointsAmount(t *testing.T) {
	// Arrange
	amount1, _ := points.NewPointsAmount(100)
	amount2, _ := points.NewPointsAmount(50)

	// Act
	result, err := amount1.Add(amount2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(150), result.Value())
	// 驗證不變性：原始值不變
	assert.Equal(t, int64(100), amount1.Value())
}

func TestPointsAmount_Add_Overflow_ReturnsError(t *testing.T) {
	// Arrange
	big, _ := points.NewPointsAmount(math.MaxInt64)
	one, _ := points.NewPointsAmount(1)

	// Act
	_, err := big.Add(one)

	// Assert
	assert.ErrorIs(t, err, points.ErrPointsOverflow)
}

func TestPointsAmount_Subtract(t *testing.T) {
	ten, _ := points.NewPointsAmount(10)
	thirty, _ := points.NewPointsAmount(30)

	result, err := thirty.Subtract(ten)
	require.NoError(t, err)
	assert.Equal(t, int64(20), result.Value())

	_, err = ten.Subtract(thirty)
	assert.ErrorIs(t, err, points.ErrInsufficientPoints)
}
