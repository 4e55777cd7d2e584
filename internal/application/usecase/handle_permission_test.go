package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/bridgehost/internal/application/port/mocks"
	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/domain/entity"
	repomocks "github.com/bnema/bridgehost/internal/domain/repository/mocks"
)

var cameraAndMic = []entity.MediaResource{entity.MediaResourceVideoCapture, entity.MediaResourceAudioCapture}

// fakeRequest records how it was answered and whether that happened inside a UI dispatch.
type fakeRequest struct {
	origin    string
	resources []entity.MediaResource
	onUI      *atomic.Bool

	granted      []entity.MediaResource
	grantCalls   int
	denyCalls    int
	answeredOnUI bool
}

func (r *fakeRequest) Origin() string                    { return r.origin }
func (r *fakeRequest) Resources() []entity.MediaResource { return r.resources }
func (r *fakeRequest) Grant(resources []entity.MediaResource) {
	r.grantCalls++
	r.granted = resources
	r.answeredOnUI = r.onUI.Load()
}
func (r *fakeRequest) Deny() {
	r.denyCalls++
	r.answeredOnUI = r.onUI.Load()
}

// inlineUI returns a UIThread mock that runs fn synchronously with onUI set.
func inlineUI(t *testing.T, onUI *atomic.Bool) *portmocks.MockUIThread {
	ctrl := gomock.NewController(t)
	ui := portmocks.NewMockUIThread(ctrl)
	ui.EXPECT().RunOnUIThread(gomock.Any()).DoAndReturn(func(fn func()) {
		onUI.Store(true)
		defer onUI.Store(false)
		fn()
	}).AnyTimes()
	return ui
}

func TestGrantMediaRequest_GrantAllGrantsEveryOrigin(t *testing.T) {
	origins := []string{
		"https://meet.example.com",
		"http://localhost:8080",
		"file:///android_asset/index.html",
		"",
	}

	for _, origin := range origins {
		t.Run(origin, func(t *testing.T) {
			ctx := testContext()
			onUI := &atomic.Bool{}
			grantLog := repomocks.NewMockGrantRepository(t)
			grantLog.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

			uc := usecase.NewGrantMediaRequestUseCase(inlineUI(t, onUI), grantLog, entity.DefaultGrantPolicy())
			req := &fakeRequest{origin: origin, resources: cameraAndMic, onUI: onUI}

			uc.Handle(ctx, req)

			assert.Equal(t, 1, req.grantCalls)
			assert.Zero(t, req.denyCalls)
			assert.Equal(t, cameraAndMic, req.granted, "granted set must equal requested set")
			assert.True(t, req.answeredOnUI, "grant must run on the UI thread")
		})
	}
}

func TestGrantMediaRequest_GrantsExactlyRequestedResources(t *testing.T) {
	tests := []struct {
		name      string
		resources []entity.MediaResource
	}{
		{"camera only", []entity.MediaResource{entity.MediaResourceVideoCapture}},
		{"mic only", []entity.MediaResource{entity.MediaResourceAudioCapture}},
		{"display and device info", []entity.MediaResource{entity.MediaResourceDisplayCapture, entity.MediaResourceDeviceInfo}},
		{"nothing named", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onUI := &atomic.Bool{}
			uc := usecase.NewGrantMediaRequestUseCase(inlineUI(t, onUI), nil, entity.DefaultGrantPolicy())
			req := &fakeRequest{origin: "https://example.com", resources: tt.resources, onUI: onUI}

			uc.Handle(testContext(), req)

			assert.Equal(t, 1, req.grantCalls)
			assert.Zero(t, req.denyCalls)
			assert.Equal(t, tt.resources, req.granted)
		})
	}
}

func TestGrantMediaRequest_RecordsNormalizedOrigin(t *testing.T) {
	ctx := testContext()
	onUI := &atomic.Bool{}
	grantLog := repomocks.NewMockGrantRepository(t)

	grantLog.EXPECT().Record(mock.Anything, mock.AnythingOfType("*entity.GrantRecord")).
		Run(func(_ context.Context, rec *entity.GrantRecord) {
			assert.Equal(t, "https://meet.example.com", rec.Origin)
			assert.Equal(t, cameraAndMic, rec.Requested)
			assert.Equal(t, cameraAndMic, rec.Granted)
			assert.Equal(t, entity.GrantAllowed, rec.Decision)
			assert.Equal(t, entity.PolicyGrantAll, rec.PolicyMode)
			assert.False(t, rec.CreatedAt.IsZero())
		}).
		Return(nil).Once()

	uc := usecase.NewGrantMediaRequestUseCase(inlineUI(t, onUI), grantLog, entity.DefaultGrantPolicy())
	uc.Handle(ctx, &fakeRequest{origin: "https://Meet.Example.com/room/1", resources: cameraAndMic, onUI: onUI})
}

func TestGrantMediaRequest_RecordFailureDoesNotBlockGrant(t *testing.T) {
	onUI := &atomic.Bool{}
	grantLog := repomocks.NewMockGrantRepository(t)
	grantLog.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	uc := usecase.NewGrantMediaRequestUseCase(inlineUI(t, onUI), grantLog, entity.DefaultGrantPolicy())
	req := &fakeRequest{origin: "https://example.com", resources: cameraAndMic, onUI: onUI}

	uc.Handle(testContext(), req)

	assert.Equal(t, 1, req.grantCalls)
	assert.Equal(t, cameraAndMic, req.granted)
}

func TestGrantMediaRequest_AllowList(t *testing.T) {
	policy := entity.GrantPolicy{
		Mode: entity.PolicyAllowList,
		AllowList: map[string][]entity.Capability{
			"https://meet.example.com": {entity.CapabilityCamera, entity.CapabilityMicrophone},
			"https://scan.example.com": {entity.CapabilityCamera},
		},
	}
	require.NoError(t, policy.Validate())

	display := []entity.MediaResource{entity.MediaResourceDisplayCapture}

	tests := []struct {
		name      string
		origin    string
		requested []entity.MediaResource
		granted   []entity.MediaResource
		denied    bool
		decision  entity.GrantDecision
	}{
		{"listed", "https://meet.example.com", cameraAndMic, cameraAndMic, false, entity.GrantAllowed},
		{"partial", "https://scan.example.com", cameraAndMic, cameraAndMic[:1], false, entity.GrantPartial},
		{"unlisted", "https://other.example.com", cameraAndMic, nil, true, entity.GrantRefused},
		{"screen share from camera only origin", "https://scan.example.com", display, nil, true, entity.GrantRefused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onUI := &atomic.Bool{}
			grantLog := repomocks.NewMockGrantRepository(t)
			grantLog.EXPECT().Record(mock.Anything, mock.AnythingOfType("*entity.GrantRecord")).
				Run(func(_ context.Context, rec *entity.GrantRecord) {
					assert.Equal(t, tt.decision, rec.Decision)
					assert.Equal(t, entity.PolicyAllowList, rec.PolicyMode)
				}).
				Return(nil).Once()

			uc := usecase.NewGrantMediaRequestUseCase(inlineUI(t, onUI), grantLog, policy)
			req := &fakeRequest{origin: tt.origin, resources: tt.requested, onUI: onUI}

			uc.Handle(testContext(), req)

			if tt.denied {
				assert.Equal(t, 1, req.denyCalls)
				assert.Zero(t, req.grantCalls)
			} else {
				assert.Equal(t, 1, req.grantCalls)
				assert.Equal(t, tt.granted, req.granted)
			}
			assert.True(t, req.answeredOnUI)
		})
	}
}

func TestGrantMediaRequest_SetPolicy(t *testing.T) {
	onUI := &atomic.Bool{}
	uc := usecase.NewGrantMediaRequestUseCase(inlineUI(t, onUI), nil, entity.DefaultGrantPolicy())
	assert.Equal(t, entity.PolicyGrantAll, uc.Policy().Mode)

	uc.SetPolicy(entity.GrantPolicy{Mode: entity.PolicyAllowList})
	assert.Equal(t, entity.PolicyAllowList, uc.Policy().Mode)

	req := &fakeRequest{origin: "https://example.com", resources: cameraAndMic, onUI: onUI}
	uc.Handle(testContext(), req)
	assert.Equal(t, 1, req.denyCalls, "empty allow list refuses everything")
}
