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

// VisitorService is the security guard's gate log. Entry and exit are both
// server writes; the local mirror never invents an exit stamp on its own.
type VisitorService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.Visitor]
}

func NewVisitorService(gw adapter.Gateway, log *logger.Logger) *VisitorService {
	return &VisitorService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.Visitor](),
	}
}

func (v *VisitorService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.Visitor](ctx, v.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/visitor",
	})
	if err != nil {
		return fmt.Errorf("fetch visitors: %w", err)
	}

	v.Records.ReplaceAll(items)
	return nil
}

// RecordEntry logs a visitor arriving at the gate.
func (v *VisitorService) RecordEntry(ctx context.Context, req models.NewVisitor) (models.Visitor, error) {
	created, err := adapter.DoJSON[models.Visitor](ctx, v.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/visitor/entry",
		Body:   req,
	})
	if err != nil {
		return models.Visitor{}, fmt.Errorf("record visitor entry: %w", err)
	}

	v.Records.InsertOne(created)
	v.logger.Info().Str("visitor_id", created.ID).Str("flat_id", created.FlatID).Msg("visitor entered")
	return created, nil
}

// RecordExit marks a visitor as having left. The exit timestamp comes back
// from the server inside the confirmed record.
func (v *VisitorService) RecordExit(ctx context.Context, id string) (models.Visitor, error) {
	key := "visitor/" + id
	if err := v.inflight.begin(key); err != nil {
		return models.Visitor{}, err
	}
	defer v.inflight.end(key)

	updated, err := adapter.DoJSON[models.Visitor](ctx, v.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/visitor/exit/" + id,
	})
	if err != nil {
		return models.Visitor{}, fmt.Errorf("record visitor exit: %w", err)
	}

	v.Records.PatchOne(id, updated)
	return updated, nil
}
