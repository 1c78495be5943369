package data

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/culture_radar/app/display/internal/domain"
	"github.com/iWorld-y/culture_radar/app/display/internal/repo"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/storage"
)

type insightRepo struct {
	data *Data
	log  *log.Helper
}

func NewInsightRepo(data *Data, logger log.Logger) repo.InsightRepo {
	return &insightRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *insightRepo) ListCatalogs(ctx context.Context) ([]*domain.Catalog, error) {
	catalogs := r.data.store.Catalogs()
	out := make([]*domain.Catalog, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, &domain.Catalog{Brand: c.Brand, Studies: c.Studies})
	}
	return out, nil
}

func (r *insightRepo) GetBundle(ctx context.Context, brand, study string) (*model.InsightBundle, error) {
	if _, err := r.data.store.Studies(brand); err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.NotFound("BRAND_NOT_FOUND", "brand not found: "+brand)
		}
		return nil, err
	}

	b, err := r.data.store.Bundle(brand, study)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.NotFound("STUDY_NOT_FOUND", "study not found: "+study)
		}
		return nil, err
	}
	return b, nil
}
