package opportunityservice

import (
	"log/slog"

	httpadapter "youthhub/contexts/listings/opportunity-service/adapters/http"
	"youthhub/contexts/listings/opportunity-service/adapters/memory"
	"youthhub/contexts/listings/opportunity-service/application/commands"
	"youthhub/contexts/listings/opportunity-service/application/queries"
	"youthhub/contexts/listings/opportunity-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Bookmarks   ports.BookmarkCascade
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			ListOpportunities: queries.ListOpportunitiesUseCase{
				Repository: deps.Repository,
				Logger:     deps.Logger,
			},
			GetOpportunity: queries.GetOpportunityUseCase{
				Repository: deps.Repository,
				Logger:     deps.Logger,
			},
			PlatformStats: queries.PlatformStatsUseCase{
				Repository: deps.Repository,
				Logger:     deps.Logger,
			},
			Submit: commands.SubmitOpportunityUseCase{
				Repository:  deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			CreateApproved: commands.CreateApprovedUseCase{
				Repository:  deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			Approve: commands.ApproveOpportunityUseCase{
				Repository: deps.Repository,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			Reject: commands.RejectOpportunityUseCase{
				Repository: deps.Repository,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			Edit: commands.EditOpportunityUseCase{
				Repository: deps.Repository,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			Delete: commands.DeleteOpportunityUseCase{
				Repository: deps.Repository,
				Bookmarks:  deps.Bookmarks,
				Logger:     deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(bookmarks ports.BookmarkCascade, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
		Bookmarks:   bookmarks,
		Logger:      logger,
	})
	module.Store = store
	return module
}
