//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/convertia/internal/bootstrap"
	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/internal/domain/form"
	"github.com/yanqian/convertia/internal/infra/config"
	httpiface "github.com/yanqian/convertia/internal/interface/http"
	"github.com/yanqian/convertia/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideConversionConfig,
		provideFormConfig,
		provideHistoryRepository,
		provideFormStore,
		conversion.NewService,
		form.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
