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

// ResidentService backs the admin's resident directory. Approving a pending
// account is a status change; the resident's own session picks the new
// status up on its next /auth/me round trip.
type ResidentService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.Resident]
}

func NewResidentService(gw adapter.Gateway, log *logger.Logger) *ResidentService {
	return &ResidentService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.Resident](),
	}
}

func (r *ResidentService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.Resident](ctx, r.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/residents",
	})
	if err != nil {
		return fmt.Errorf("fetch residents: %w", err)
	}

	r.Records.ReplaceAll(items)
	return nil
}

// SetStatus activates or rejects a resident account.
func (r *ResidentService) SetStatus(ctx context.Context, id string, status models.AccountStatus) (models.Resident, error) {
	key := "residents/" + id
	if err := r.inflight.begin(key); err != nil {
		return models.Resident{}, err
	}
	defer r.inflight.end(key)

	updated, err := adapter.DoJSON[models.Resident](ctx, r.gw, adapter.Call{
		Method: http.MethodPatch,
		Path:   "/residents/" + id + "/status",
		Body:   map[string]models.AccountStatus{"status": status},
	})
	if err != nil {
		return models.Resident{}, fmt.Errorf("update resident status: %w", err)
	}

	r.Records.PatchOne(id, updated)
	r.logger.Info().Str("resident_id", id).Str("status", string(updated.Status)).Msg("resident status changed")
	return updated, nil
}
