package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/infrastructure/persistence/sqlite"
)

func TestOSPermissionResultRepository_LatestEmpty(t *testing.T) {
	repo := sqlite.NewOSPermissionResultRepository(openTestDB(t))

	latest, err := repo.Latest(testCtx())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestOSPermissionResultRepository_SaveAndLatest(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewOSPermissionResultRepository(openTestDB(t))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, entity.OSPermissionResult{
		RequestCode: entity.MediaPermissionsRequestCode,
		Statuses: map[entity.Capability]entity.OSPermissionStatus{
			entity.CapabilityCamera:     entity.OSPermissionDenied,
			entity.CapabilityMicrophone: entity.OSPermissionDenied,
		},
		ReceivedAt: base,
	}))
	require.NoError(t, repo.Save(ctx, entity.OSPermissionResult{
		RequestCode: entity.MediaPermissionsRequestCode,
		Statuses: map[entity.Capability]entity.OSPermissionStatus{
			entity.CapabilityCamera:     entity.OSPermissionGranted,
			entity.CapabilityMicrophone: entity.OSPermissionDenied,
		},
		ReceivedAt: base.Add(time.Second),
	}))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)

	assert.Equal(t, entity.MediaPermissionsRequestCode, latest.RequestCode)
	assert.True(t, latest.ReceivedAt.Equal(base.Add(time.Second)))
	assert.Equal(t, entity.OSPermissionGranted, latest.Statuses[entity.CapabilityCamera])
	assert.Equal(t, []entity.Capability{entity.CapabilityMicrophone}, latest.Denied())
}
