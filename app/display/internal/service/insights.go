package service

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/culture_radar/app/display/internal/domain"
	"github.com/iWorld-y/culture_radar/app/display/internal/usecase"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/render"
)

type InsightService struct {
	uc  *usecase.InsightUseCase
	log *log.Helper
}

func NewInsightService(uc *usecase.InsightUseCase, logger log.Logger) *InsightService {
	return &InsightService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *InsightService) ListBrands(ctx context.Context) (*domain.BrandsReply, error) {
	catalogs, err := s.uc.Catalogs(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.BrandsReply{Brands: catalogs}, nil
}

func (s *InsightService) GetPage(ctx context.Context, req *domain.PageRequest) (*render.Page, error) {
	return s.uc.Page(ctx, strings.TrimSpace(req.Brand), strings.TrimSpace(req.Study))
}

func (s *InsightService) Ask(ctx context.Context, req *domain.AskRequest) (*domain.AskReply, error) {
	s.log.Infof("ask: brand=%q study=%q deep=%v", req.Brand, req.Study, req.Deep)
	return s.uc.Ask(ctx, req)
}
