package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/culture_radar/app/display/internal/domain"
	"github.com/iWorld-y/culture_radar/app/display/internal/repo"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/chat"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/render"
)

// InsightUseCase 洞察页业务逻辑
type InsightUseCase struct {
	repo      repo.InsightRepo
	assistant repo.AssistantRepo
	renderer  *render.Renderer
	log       *log.Helper
}

// NewInsightUseCase 创建洞察页业务逻辑实例
func NewInsightUseCase(repo repo.InsightRepo, assistant repo.AssistantRepo, renderer *render.Renderer, logger log.Logger) *InsightUseCase {
	return &InsightUseCase{repo: repo, assistant: assistant, renderer: renderer, log: log.NewHelper(logger)}
}

// Catalogs 列出品牌及研究
func (uc *InsightUseCase) Catalogs(ctx context.Context) ([]*domain.Catalog, error) {
	return uc.repo.ListCatalogs(ctx)
}

// Page 渲染品牌/研究的洞察页
func (uc *InsightUseCase) Page(ctx context.Context, brand, study string) (*render.Page, error) {
	b, err := uc.repo.GetBundle(ctx, brand, study)
	if err != nil {
		return nil, err
	}
	page, err := uc.renderer.Page(b, brand, study)
	if err != nil {
		uc.log.Errorf("render %s/%s failed: %v", brand, study, err)
		return nil, errors.InternalServer("RENDER_FAILED", err.Error())
	}
	return page, nil
}

// Ask 向助手提问，指定品牌/研究时使用其助手上下文
func (uc *InsightUseCase) Ask(ctx context.Context, req *domain.AskRequest) (*domain.AskReply, error) {
	opts := chat.AskOptions{
		Deep: req.Deep,
		Progress: func(status string, progress int) {
			uc.log.Debugf("ask: %s (%d%%)", status, progress)
		},
	}
	if req.Brand != "" {
		b, err := uc.repo.GetBundle(ctx, req.Brand, req.Study)
		if err != nil {
			return nil, err
		}
		opts.SystemContext = b.AIContext.SystemContext
		opts.ResearchFile = b.AIContext.ResearchFile
	}

	ans, err := uc.assistant.Ask(ctx, req.Prompt, opts)
	if err != nil {
		return nil, err
	}
	return &domain.AskReply{Answer: ans.Body, Sources: ans.Sources, Deep: ans.Deep}, nil
}
