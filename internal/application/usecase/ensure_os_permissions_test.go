package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/bridgehost/internal/application/port/mocks"
	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

var bothCapabilities = []entity.Capability{entity.CapabilityCamera, entity.CapabilityMicrophone}

func TestEnsureOSPermissions_AllGrantedIssuesNoRequest(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	gateway.EXPECT().Status(mock.Anything, entity.CapabilityCamera).Return(entity.OSPermissionGranted, nil).Once()
	gateway.EXPECT().Status(mock.Anything, entity.CapabilityMicrophone).Return(entity.OSPermissionGranted, nil).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	out, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.Empty(t, out.Missing)
	assert.False(t, out.Requested)
	gateway.AssertNotCalled(t, "Request", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureOSPermissions_MissingRequestsBothWithCode(t *testing.T) {
	tests := []struct {
		name       string
		camera     entity.OSPermissionStatus
		microphone entity.OSPermissionStatus
		missing    []entity.Capability
	}{
		{
			name:       "camera missing",
			camera:     entity.OSPermissionNotDetermined,
			microphone: entity.OSPermissionGranted,
			missing:    []entity.Capability{entity.CapabilityCamera},
		},
		{
			name:       "microphone missing",
			camera:     entity.OSPermissionGranted,
			microphone: entity.OSPermissionDenied,
			missing:    []entity.Capability{entity.CapabilityMicrophone},
		},
		{
			name:       "both missing",
			camera:     entity.OSPermissionDenied,
			microphone: entity.OSPermissionPermanentlyDenied,
			missing:    bothCapabilities,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			gateway := portmocks.NewMockOSPermissionGateway(t)

			gateway.EXPECT().Status(mock.Anything, entity.CapabilityCamera).Return(tt.camera, nil).Once()
			gateway.EXPECT().Status(mock.Anything, entity.CapabilityMicrophone).Return(tt.microphone, nil).Once()
			// Both are always requested together, camera first, even if only one is missing.
			gateway.EXPECT().Request(mock.Anything, bothCapabilities, 2001).Return(nil).Once()

			uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
			out, err := uc.Execute(ctx)

			require.NoError(t, err)
			assert.True(t, out.Requested)
			assert.Equal(t, tt.missing, out.Missing)
		})
	}
}

func TestEnsureOSPermissions_StatusErrorCountsAsMissing(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	gateway.EXPECT().Status(mock.Anything, entity.CapabilityCamera).
		Return(entity.OSPermissionUnknown, errors.New("portal timeout")).Once()
	gateway.EXPECT().Status(mock.Anything, entity.CapabilityMicrophone).Return(entity.OSPermissionGranted, nil).Once()
	gateway.EXPECT().Request(mock.Anything, bothCapabilities, entity.MediaPermissionsRequestCode).Return(nil).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	out, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, []entity.Capability{entity.CapabilityCamera}, out.Missing)
}

func TestEnsureOSPermissions_RequestErrorIsWrapped(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	gateway.EXPECT().Status(mock.Anything, mock.Anything).Return(entity.OSPermissionNotDetermined, nil).Times(2)
	gateway.EXPECT().Request(mock.Anything, bothCapabilities, entity.MediaPermissionsRequestCode).
		Return(errors.New("dbus: connection closed")).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	out, err := uc.Execute(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request os permissions")
	assert.False(t, out.Requested)
	assert.Len(t, out.Missing, 2)
}

func TestEnsureOSPermissions_RepeatRunsAreIndependent(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	// First launch: nothing granted yet. User grants both in the dialog.
	gateway.EXPECT().Status(mock.Anything, mock.Anything).Return(entity.OSPermissionNotDetermined, nil).Times(2)
	gateway.EXPECT().Request(mock.Anything, bothCapabilities, entity.MediaPermissionsRequestCode).Return(nil).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	first, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, first.Requested)

	// Second launch: already granted, no dialog.
	gateway.EXPECT().Status(mock.Anything, mock.Anything).Return(entity.OSPermissionGranted, nil).Times(2)

	second, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, second.Requested)
}

func TestEnsureOSPermissions_CheckReportsErrors(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)
	statusErr := errors.New("no portal")

	gateway.EXPECT().Status(mock.Anything, entity.CapabilityCamera).Return(entity.OSPermissionGranted, nil).Once()
	gateway.EXPECT().Status(mock.Anything, entity.CapabilityMicrophone).Return("", statusErr).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	statuses := uc.Check(ctx)

	require.Len(t, statuses, 2)
	assert.Equal(t, entity.CapabilityCamera, statuses[0].Capability)
	assert.Equal(t, entity.OSPermissionGranted, statuses[0].Status)
	assert.NoError(t, statuses[0].Err)
	assert.Equal(t, entity.OSPermissionUnknown, statuses[1].Status)
	assert.ErrorIs(t, statuses[1].Err, statusErr)
}

func TestEnsureOSPermissions_ExecuteAndWaitReturnsResult(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	var deliver func(entity.OSPermissionResult)
	unsubscribed := false
	gateway.EXPECT().OnResult(mock.Anything).RunAndReturn(func(h func(entity.OSPermissionResult)) func() {
		deliver = h
		return func() { unsubscribed = true }
	}).Once()
	gateway.EXPECT().Status(mock.Anything, mock.Anything).Return(entity.OSPermissionNotDetermined, nil).Times(2)
	gateway.EXPECT().Request(mock.Anything, bothCapabilities, entity.MediaPermissionsRequestCode).
		RunAndReturn(func(context.Context, []entity.Capability, int) error {
			go func() {
				deliver(entity.OSPermissionResult{RequestCode: 7})
				deliver(entity.OSPermissionResult{
					RequestCode: entity.MediaPermissionsRequestCode,
					Statuses: map[entity.Capability]entity.OSPermissionStatus{
						entity.CapabilityCamera:     entity.OSPermissionGranted,
						entity.CapabilityMicrophone: entity.OSPermissionGranted,
					},
				})
			}()
			return nil
		}).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	out, result, err := uc.ExecuteAndWait(ctx, 5*time.Second)

	require.NoError(t, err)
	assert.True(t, out.Requested)
	require.NotNil(t, result)
	assert.Equal(t, entity.MediaPermissionsRequestCode, result.RequestCode)
	assert.True(t, result.AllGranted())
	assert.True(t, unsubscribed)
}

func TestEnsureOSPermissions_ExecuteAndWaitSkipsWhenGranted(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	gateway.EXPECT().OnResult(mock.Anything).Return(func() {}).Once()
	gateway.EXPECT().Status(mock.Anything, mock.Anything).Return(entity.OSPermissionGranted, nil).Times(2)

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	out, result, err := uc.ExecuteAndWait(ctx, time.Second)

	require.NoError(t, err)
	assert.False(t, out.Requested)
	assert.Nil(t, result)
}

func TestEnsureOSPermissions_ExecuteAndWaitTimesOut(t *testing.T) {
	ctx := testContext()
	gateway := portmocks.NewMockOSPermissionGateway(t)

	gateway.EXPECT().OnResult(mock.Anything).Return(func() {}).Once()
	gateway.EXPECT().Status(mock.Anything, mock.Anything).Return(entity.OSPermissionDenied, nil).Times(2)
	gateway.EXPECT().Request(mock.Anything, bothCapabilities, entity.MediaPermissionsRequestCode).Return(nil).Once()

	uc := usecase.NewEnsureOSPermissionsUseCase(gateway)
	out, result, err := uc.ExecuteAndWait(ctx, 20*time.Millisecond)

	assert.ErrorIs(t, err, usecase.ErrPermissionRequestTimeout)
	assert.True(t, out.Requested)
	assert.Nil(t, result)
}
