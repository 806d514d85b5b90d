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

// ComplaintService talks to the /complaints endpoints and mirrors the
// server's answers into Records. The mirror changes only on a confirmed
// response; a failed call leaves it exactly as it was.
type ComplaintService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.Complaint]
}

func NewComplaintService(gw adapter.Gateway, log *logger.Logger) *ComplaintService {
	return &ComplaintService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.Complaint](),
	}
}

// Refresh replaces the local mirror with the server's current complaint list.
// Admins receive every complaint, residents only their own; the server
// decides, the client just stores what it is given.
func (c *ComplaintService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.Complaint](ctx, c.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/complaints",
	})
	if err != nil {
		return fmt.Errorf("fetch complaints: %w", err)
	}

	c.Records.ReplaceAll(items)
	return nil
}

// File raises a new complaint. The server-assigned record from the response
// is inserted into the mirror; nothing is stored speculatively.
func (c *ComplaintService) File(ctx context.Context, req models.NewComplaint) (models.Complaint, error) {
	created, err := adapter.DoJSON[models.Complaint](ctx, c.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/complaints",
		Body:   req,
	})
	if err != nil {
		return models.Complaint{}, fmt.Errorf("file complaint: %w", err)
	}

	c.Records.InsertOne(created)
	c.logger.Info().Str("complaint_id", created.ID).Msg("complaint filed")
	return created, nil
}

// SetStatus resolves or rejects a complaint. While a status change for a
// given complaint is unanswered, further changes for the same complaint are
// rejected with ErrRequestInFlight.
func (c *ComplaintService) SetStatus(ctx context.Context, id string, status models.ComplaintStatus) (models.Complaint, error) {
	key := "complaints/" + id
	if err := c.inflight.begin(key); err != nil {
		return models.Complaint{}, err
	}
	defer c.inflight.end(key)

	updated, err := adapter.DoJSON[models.Complaint](ctx, c.gw, adapter.Call{
		Method: http.MethodPatch,
		Path:   "/complaints/" + id + "/status",
		Body:   map[string]models.ComplaintStatus{"status": status},
	})
	if err != nil {
		return models.Complaint{}, fmt.Errorf("update complaint status: %w", err)
	}

	c.Records.PatchOne(id, updated)
	return updated, nil
}
