package server

import (
	"context"
	"embed"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/culture_radar/app/display/internal/conf"
	"github.com/iWorld-y/culture_radar/app/display/internal/domain"
	"github.com/iWorld-y/culture_radar/app/display/internal/service"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/render"
)

//go:embed assets/*
var assets embed.FS

const (
	OperationListBrands = "/insights.Display/ListBrands"
	OperationGetPage    = "/insights.Display/GetPage"
	OperationGetBundle  = "/insights.Display/GetBundle"
	OperationAsk        = "/insights.Display/Ask"
)

func NewHTTPServer(c *conf.Server, s *service.InsightService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	registerInsightRoutes(srv, s)

	// 首页通过 /api/brands 列出品牌和研究
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		content, _ := assets.ReadFile("assets/index.html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	return srv
}

func registerInsightRoutes(srv *http.Server, s *service.InsightService) {
	r := srv.Route("/")
	r.GET("/api/brands", listBrandsHandler(s))
	r.GET("/api/bundle", getBundleHandler(s))
	r.GET("/insights", getPageHandler(s))
	r.POST("/api/ask", askHandler(s))
}

func listBrandsHandler(s *service.InsightService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationListBrands)
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return s.ListBrands(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func getBundleHandler(s *service.InsightService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in domain.PageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetBundle)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetPage(ctx, req.(*domain.PageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func getPageHandler(s *service.InsightService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in domain.PageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetPage)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetPage(ctx, req.(*domain.PageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}

		w := ctx.Response()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return render.WriteHTML(w, out.(*render.Page))
	}
}

func askHandler(s *service.InsightService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in domain.AskRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationAsk)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.Ask(ctx, req.(*domain.AskRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}
