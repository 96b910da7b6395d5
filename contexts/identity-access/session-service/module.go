package sessionservice

import (
	"log/slog"

	httpadapter "youthhub/contexts/identity-access/session-service/adapters/http"
	"youthhub/contexts/identity-access/session-service/adapters/memory"
	"youthhub/contexts/identity-access/session-service/application"
	"youthhub/contexts/identity-access/session-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Service  application.Service
	Store    *memory.Store
	Verifier *memory.StaticTokenVerifier
}

type Dependencies struct {
	Verifier ports.TokenVerifier
	Profiles ports.ProfileRepository
	Cache    ports.ProfileCache
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Verifier: deps.Verifier,
		Profiles: deps.Profiles,
		Cache:    deps.Cache,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	verifier := memory.NewStaticTokenVerifier()
	module := NewModule(Dependencies{
		Verifier: verifier,
		Profiles: store,
		Cache:    memory.PassthroughCache{},
		Clock:    store,
		Logger:   logger,
	})
	module.Store = store
	module.Verifier = verifier
	return module
}
