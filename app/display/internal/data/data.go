package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/chat"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/config"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/storage"
)

type Data struct {
	store     *storage.Store
	assistant *chat.Assistant
}

func NewData(cfg *config.Config, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	store, err := storage.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	if cfg.Data.Watch {
		if err := store.Watch(ctx); err != nil {
			helper.Warnf("fixture hot reload disabled: %v", err)
		}
	}

	// 未配置 API Key 时助手不可用，页面仍可浏览
	assistant, err := chat.NewAssistant(ctx, cfg)
	if err != nil {
		if !errors.Is(err, config.ErrMissingAPIKey) {
			cancel()
			store.Close()
			return nil, nil, err
		}
		helper.Warn("llm api key is not configured, the assistant is disabled")
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		cancel()
		store.Close()
	}
	return &Data{store: store, assistant: assistant}, cleanup, nil
}
