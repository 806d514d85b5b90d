package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/mock"
	"github.com/societyhub/societyhub/models"
)

func TestComplaintService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewComplaintService(gw, logger.Nop())
	ctx := context.Background()

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, http.MethodGet, call.Method)
			assert.Equal(t, "/complaints", call.Path)
			return json.RawMessage(`[{"id":"c1","title":"Leaking tap","status":"OPEN"}]`), nil
		},
	)

	require.NoError(t, svc.Refresh(ctx))
	require.Equal(t, 1, svc.Records.Len())

	got, ok := svc.Records.Get("c1")
	require.True(t, ok)
	assert.Equal(t, models.ComplaintOpen, got.Status)
}

func TestComplaintService_FileInsertsConfirmedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewComplaintService(gw, logger.Nop())
	ctx := context.Background()

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, http.MethodPost, call.Method)
			return json.RawMessage(`{"id":"c9","title":"Lift stuck","status":"OPEN"}`), nil
		},
	)

	created, err := svc.File(ctx, models.NewComplaint{Title: "Lift stuck"})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID, "the server assigns the id")

	_, ok := svc.Records.Get("c9")
	assert.True(t, ok)
}

func TestComplaintService_FailedCallLeavesMirrorUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewComplaintService(gw, logger.Nop())
	ctx := context.Background()

	svc.Records.ReplaceAll([]models.Complaint{{ID: "c1", Status: models.ComplaintOpen}})

	gw.EXPECT().Do(ctx, gomock.Any()).Return(nil, errors.New("server error"))

	_, err := svc.SetStatus(ctx, "c1", models.ComplaintResolved)
	require.Error(t, err)

	got, _ := svc.Records.Get("c1")
	assert.Equal(t, models.ComplaintOpen, got.Status)
}

func TestComplaintService_SetStatusPatchesFromResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewComplaintService(gw, logger.Nop())
	ctx := context.Background()

	svc.Records.ReplaceAll([]models.Complaint{{ID: "c1", Title: "Leaking tap", Status: models.ComplaintOpen}})

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, http.MethodPatch, call.Method)
			assert.Equal(t, "/complaints/c1/status", call.Path)
			return json.RawMessage(`{"id":"c1","title":"Leaking tap","status":"RESOLVED"}`), nil
		},
	)

	updated, err := svc.SetStatus(ctx, "c1", models.ComplaintResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, updated.Status)

	got, _ := svc.Records.Get("c1")
	assert.Equal(t, models.ComplaintResolved, got.Status)
	assert.Equal(t, "Leaking tap", got.Title)
}

func TestComplaintService_DuplicateSubmitRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewComplaintService(gw, logger.Nop())
	ctx := context.Background()

	svc.Records.ReplaceAll([]models.Complaint{{ID: "c1", Status: models.ComplaintOpen}})

	firstEntered := make(chan struct{})
	release := make(chan struct{})

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ adapter.Call) (json.RawMessage, error) {
			close(firstEntered)
			<-release
			return json.RawMessage(`{"id":"c1","status":"RESOLVED"}`), nil
		},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.SetStatus(ctx, "c1", models.ComplaintResolved)
		assert.NoError(t, err)
	}()

	// Second submit for the same record while the first is unanswered.
	<-firstEntered
	_, err := svc.SetStatus(ctx, "c1", models.ComplaintRejected)
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	wg.Wait()

	// After the first call settles the record is available again. No extra
	// gateway expectation here: the failed duplicate never reached it.
	got, _ := svc.Records.Get("c1")
	assert.Equal(t, models.ComplaintResolved, got.Status)
}
