package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/mock"
	"github.com/societyhub/societyhub/models"
)

func TestMaintenanceService_PayPatchesFromServerRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewMaintenanceService(gw, logger.Nop())
	ctx := context.Background()

	svc.Records.ReplaceAll([]models.MaintenanceRecord{
		{ID: "m1", FlatID: "f1", Month: "2026-08", Amount: 2500, Status: models.MaintenanceUnpaid},
	})

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, http.MethodPost, call.Method)
			assert.Equal(t, "/maintenance/pay/m1", call.Path)
			assert.Nil(t, call.Body)
			return json.RawMessage(`{"id":"m1","flatId":"f1","month":"2026-08","amount":2500,"status":"PAID","paidAt":"2026-08-28T10:15:00Z"}`), nil
		},
	)

	paid, err := svc.Pay(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.MaintenancePaid, paid.Status)
	require.NotNil(t, paid.PaidAt, "the payment timestamp comes from the server")

	got, _ := svc.Records.Get("m1")
	assert.Equal(t, models.MaintenancePaid, got.Status)
	assert.NotNil(t, got.PaidAt)
}

func TestMaintenanceService_PayUnknownRecordIsMirrorNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	svc := NewMaintenanceService(gw, logger.Nop())
	ctx := context.Background()

	svc.Records.ReplaceAll([]models.MaintenanceRecord{{ID: "m1", Status: models.MaintenanceUnpaid}})

	// The server knows a record the mirror has not loaded yet. The call
	// succeeds, the patch finds no matching row and changes nothing.
	gw.EXPECT().Do(ctx, gomock.Any()).
		Return(json.RawMessage(`{"id":"m-unknown","status":"PAID"}`), nil)

	_, err := svc.Pay(ctx, "m-unknown")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Records.Len())
	got, _ := svc.Records.Get("m1")
	assert.Equal(t, models.MaintenanceUnpaid, got.Status)
}
