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

// AccessRequestService handles flat-access requests: a pending resident asks
// to be assigned to a flat, the admin approves or rejects. Approval is what
// eventually activates the resident's account on the server.
type AccessRequestService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.AccessRequest]
}

func NewAccessRequestService(gw adapter.Gateway, log *logger.Logger) *AccessRequestService {
	return &AccessRequestService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.AccessRequest](),
	}
}

func (a *AccessRequestService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.AccessRequest](ctx, a.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/flat-requests",
	})
	if err != nil {
		return fmt.Errorf("fetch access requests: %w", err)
	}

	a.Records.ReplaceAll(items)
	return nil
}

// Submit files a request for the calling resident. The server identifies the
// requester from the bearer credential.
func (a *AccessRequestService) Submit(ctx context.Context, req models.NewAccessRequest) (models.AccessRequest, error) {
	created, err := adapter.DoJSON[models.AccessRequest](ctx, a.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/flat-requests",
		Body:   req,
	})
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("submit access request: %w", err)
	}

	a.Records.InsertOne(created)
	return created, nil
}

// Decide approves or rejects a pending request.
func (a *AccessRequestService) Decide(ctx context.Context, id string, status models.AccessRequestStatus) (models.AccessRequest, error) {
	key := "flat-requests/" + id
	if err := a.inflight.begin(key); err != nil {
		return models.AccessRequest{}, err
	}
	defer a.inflight.end(key)

	updated, err := adapter.DoJSON[models.AccessRequest](ctx, a.gw, adapter.Call{
		Method: http.MethodPatch,
		Path:   "/flat-requests/" + id,
		Body:   map[string]models.AccessRequestStatus{"status": status},
	})
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("decide access request: %w", err)
	}

	a.Records.PatchOne(id, updated)
	a.logger.Info().Str("request_id", id).Str("status", string(updated.Status)).Msg("access request decided")
	return updated, nil
}
