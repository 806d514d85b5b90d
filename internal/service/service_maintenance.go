package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/store"
	"github.com/societyhub/societyhub/models"
)

// MaintenanceService handles monthly maintenance bills. Paying a bill never
// flips the local record by itself: the mirror is patched from the server's
// confirmed record, which carries the authoritative status and paidAt stamp.
type MaintenanceService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.MaintenanceRecord]
}

func NewMaintenanceService(gw adapter.Gateway, log *logger.Logger) *MaintenanceService {
	return &MaintenanceService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.MaintenanceRecord](),
	}
}

func (m *MaintenanceService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.MaintenanceRecord](ctx, m.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/maintenance",
	})
	if err != nil {
		return fmt.Errorf("fetch maintenance records: %w", err)
	}

	m.Records.ReplaceAll(items)
	return nil
}

// Raise creates a bill for a flat. Admin only.
func (m *MaintenanceService) Raise(ctx context.Context, req models.NewMaintenanceRecord) (models.MaintenanceRecord, error) {
	created, err := adapter.DoJSON[models.MaintenanceRecord](ctx, m.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/maintenance",
		Body:   req,
	})
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("raise maintenance bill: %w", err)
	}

	m.Records.InsertOne(created)
	return created, nil
}

// Pay settles a bill. Double submits while the first payment is unanswered
// are refused, so a slow network cannot charge twice.
func (m *MaintenanceService) Pay(ctx context.Context, id string) (models.MaintenanceRecord, error) {
	key := "maintenance/" + id
	if err := m.inflight.begin(key); err != nil {
		return models.MaintenanceRecord{}, err
	}
	defer m.inflight.end(key)

	paid, err := adapter.DoJSON[models.MaintenanceRecord](ctx, m.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/maintenance/pay/" + id,
	})
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("pay maintenance bill: %w", err)
	}

	m.Records.PatchOne(id, paid)
	m.logger.Info().Str("record_id", id).Msg("maintenance bill paid")
	return paid, nil
}
