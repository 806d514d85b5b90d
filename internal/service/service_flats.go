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

// FlatService manages the society's flat registry via the /flat endpoints.
// Create, update and delete are admin operations; the server enforces that,
// the client only mirrors the confirmed outcome.
type FlatService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.Flat]
}

func NewFlatService(gw adapter.Gateway, log *logger.Logger) *FlatService {
	return &FlatService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.Flat](),
	}
}

func (f *FlatService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.Flat](ctx, f.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/flat",
	})
	if err != nil {
		return fmt.Errorf("fetch flats: %w", err)
	}

	f.Records.ReplaceAll(items)
	return nil
}

func (f *FlatService) Create(ctx context.Context, req models.NewFlat) (models.Flat, error) {
	created, err := adapter.DoJSON[models.Flat](ctx, f.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/flat",
		Body:   req,
	})
	if err != nil {
		return models.Flat{}, fmt.Errorf("create flat: %w", err)
	}

	f.Records.InsertOne(created)
	f.logger.Info().Str("flat_id", created.ID).Msg("flat created")
	return created, nil
}

func (f *FlatService) Update(ctx context.Context, id string, req models.NewFlat) (models.Flat, error) {
	key := "flat/" + id
	if err := f.inflight.begin(key); err != nil {
		return models.Flat{}, err
	}
	defer f.inflight.end(key)

	updated, err := adapter.DoJSON[models.Flat](ctx, f.gw, adapter.Call{
		Method: http.MethodPut,
		Path:   "/flat/" + id,
		Body:   req,
	})
	if err != nil {
		return models.Flat{}, fmt.Errorf("update flat: %w", err)
	}

	f.Records.PatchOne(id, updated)
	return updated, nil
}

func (f *FlatService) Delete(ctx context.Context, id string) error {
	key := "flat/" + id
	if err := f.inflight.begin(key); err != nil {
		return err
	}
	defer f.inflight.end(key)

	if _, err := f.gw.Do(ctx, adapter.Call{
		Method: http.MethodDelete,
		Path:   "/flat/" + id,
	}); err != nil {
		return fmt.Errorf("delete flat: %w", err)
	}

	f.Records.RemoveOne(id)
	return nil
}
