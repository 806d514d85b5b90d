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

// NoticeService serves the society notice board. Every role can read
// notices; posting and deleting are admin operations.
type NoticeService struct {
	gw       adapter.Gateway
	inflight *inflight
	logger   *logger.Logger

	Records *store.Slice[models.Notice]
}

func NewNoticeService(gw adapter.Gateway, log *logger.Logger) *NoticeService {
	return &NoticeService{
		gw:       gw,
		inflight: newInflight(),
		logger:   log,
		Records:  store.NewSlice[models.Notice](),
	}
}

func (n *NoticeService) Refresh(ctx context.Context) error {
	items, err := adapter.DoJSON[[]models.Notice](ctx, n.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/notice",
	})
	if err != nil {
		return fmt.Errorf("fetch notices: %w", err)
	}

	n.Records.ReplaceAll(items)
	return nil
}

func (n *NoticeService) Post(ctx context.Context, req models.NewNotice) (models.Notice, error) {
	created, err := adapter.DoJSON[models.Notice](ctx, n.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/notice",
		Body:   req,
	})
	if err != nil {
		return models.Notice{}, fmt.Errorf("post notice: %w", err)
	}

	n.Records.InsertOne(created)
	n.logger.Info().Str("notice_id", created.ID).Msg("notice posted")
	return created, nil
}

func (n *NoticeService) Delete(ctx context.Context, id string) error {
	key := "notice/" + id
	if err := n.inflight.begin(key); err != nil {
		return err
	}
	defer n.inflight.end(key)

	if _, err := n.gw.Do(ctx, adapter.Call{
		Method: http.MethodDelete,
		Path:   "/notice/" + id,
	}); err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}

	n.Records.RemoveOne(id)
	return nil
}
