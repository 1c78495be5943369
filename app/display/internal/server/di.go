package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/culture_radar/app/display/internal/data"
	"github.com/iWorld-y/culture_radar/app/display/internal/service"
	"github.com/iWorld-y/culture_radar/app/display/internal/usecase"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewInsightsConfig,
	NewRenderer,

	// Data providers
	data.NewData,
	data.NewInsightRepo,
	data.NewAssistantRepo,

	// UseCase providers
	usecase.NewInsightUseCase,

	// Service providers
	service.NewInsightService,
)
