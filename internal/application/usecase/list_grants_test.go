package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
	repomocks "github.com/bnema/bridgehost/internal/domain/repository/mocks"
)

func TestListGrants_DefaultLimitAndNormalizedOrigin(t *testing.T) {
	grants := repomocks.NewMockGrantRepository(t)
	expected := []*entity.GrantRecord{{ID: 1, Origin: "https://meet.example.com"}}

	grants.EXPECT().List(mock.Anything, repository.GrantFilter{
		Origin: "https://meet.example.com",
		Limit:  usecase.DefaultGrantListLimit,
	}).Return(expected, nil).Once()

	uc := usecase.NewListGrantsUseCase(grants)
	records, err := uc.List(testContext(), "https://MEET.example.com/some/path", 0)

	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestListGrants_AllOrigins(t *testing.T) {
	grants := repomocks.NewMockGrantRepository(t)
	grants.EXPECT().List(mock.Anything, repository.GrantFilter{Limit: 10}).Return(nil, nil).Once()

	records, err := usecase.NewListGrantsUseCase(grants).List(testContext(), "", 10)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListGrants_InvalidOrigin(t *testing.T) {
	grants := repomocks.NewMockGrantRepository(t)

	_, err := usecase.NewListGrantsUseCase(grants).List(testContext(), "not-an-origin", 0)

	require.Error(t, err)
	grants.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListGrants_RepositoryErrorIsWrapped(t *testing.T) {
	grants := repomocks.NewMockGrantRepository(t)
	dbErr := errors.New("no such table")
	grants.EXPECT().List(mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	_, err := usecase.NewListGrantsUseCase(grants).List(testContext(), "", 0)

	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "list grants")
}

func TestPurgeGrants(t *testing.T) {
	grants := repomocks.NewMockGrantRepository(t)
	grants.EXPECT().Purge(mock.Anything, "https://meet.example.com").Return(int64(3), nil).Once()
	grants.EXPECT().Purge(mock.Anything, "").Return(int64(5), nil).Once()

	uc := usecase.NewListGrantsUseCase(grants)

	n, err := uc.Purge(testContext(), "https://meet.example.com:443x")
	require.Error(t, err, "invalid port must be rejected")
	assert.Zero(t, n)

	n, err = uc.Purge(testContext(), "https://Meet.Example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = uc.Purge(testContext(), "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}
