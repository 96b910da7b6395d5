package bookmarkservice

import (
	"log/slog"

	httpadapter "youthhub/contexts/listings/bookmark-service/adapters/http"
	"youthhub/contexts/listings/bookmark-service/adapters/memory"
	"youthhub/contexts/listings/bookmark-service/application"
	"youthhub/contexts/listings/bookmark-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Catalog    ports.OpportunityCatalog
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:    deps.Repository,
		Catalog: deps.Catalog,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(catalog ports.OpportunityCatalog, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Catalog:    catalog,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
