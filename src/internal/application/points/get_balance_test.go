package points

import (
	"testing"

	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPointsBalanceUseCase_ExistingAccount(t *testing.T) {
	// Arrange
	repo := NewMockPointsAccountRepository().withBalance(7, 30)
	useCase := NewGetPointsBalanceUseCase(repo)

	// Act
	result, err := useCase.Execute(GetPointsBalanceQuery{UserID: 7})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(30), result.Balance)
}

func TestGetPointsBalanceUseCase_UnknownUser_ReturnsZeroWithoutWriting(t *testing.T) {
	// Arrange
	repo := NewMockPointsAccountRepository()
	useCase := NewGetPointsBalanceUseCase(repo)

	// Act
	result, err := useCase.Execute(GetPointsBalanceQuery{UserID: 8})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Balance)
	assert.Equal(t, 0, repo.SaveCallCount)
	_, exists := repo.balance(8)
	assert.False(t, exists)
}

func TestGetPointsBalanceUseCase_RepositoryFailure_ReturnsError(t *testing.T) {
	repo := NewMockPointsAccountRepository()
	repo.FindErr = points.ErrRepositoryError.WithContext("op", "find")

	_, err := NewGetPointsBalanceUseCase(repo).Execute(GetPointsBalanceQuery{UserID: 8})

	assert.ErrorIs(t, err, points.ErrRepositoryError)
}
