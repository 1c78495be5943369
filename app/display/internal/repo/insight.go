package repo

import (
	"context"

	"github.com/iWorld-y/culture_radar/app/display/internal/domain"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/chat"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// InsightRepo 洞察数据仓库接口
type InsightRepo interface {
	// ListCatalogs 列出全部品牌及研究
	ListCatalogs(ctx context.Context) ([]*domain.Catalog, error)
	// GetBundle 获取品牌/研究的洞察数据
	GetBundle(ctx context.Context, brand, study string) (*model.InsightBundle, error)
}

// AssistantRepo 问答助手接口
type AssistantRepo interface {
	Ask(ctx context.Context, prompt string, opts chat.AskOptions) (*chat.Answer, error)
}
