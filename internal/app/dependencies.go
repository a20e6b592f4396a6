package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stashly/stashly/internal/config"
	"github.com/stashly/stashly/internal/event_bus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/account"
	"github.com/stashly/stashly/pkg/envelope"
	"github.com/stashly/stashly/pkg/goal"
	"github.com/stashly/stashly/pkg/google"
	"github.com/stashly/stashly/pkg/kids"
	"github.com/stashly/stashly/pkg/recipe"
	"github.com/stashly/stashly/pkg/summary"
	"github.com/stashly/stashly/pkg/transaction"
	"github.com/stashly/stashly/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	EnvelopeRepo    envelope.Repository
	EnvelopeService envelope.Service
	EnvelopeHandler *envelope.Handler

	AccountRepo    account.Repository
	AccountService account.Service
	AccountHandler *account.Handler

	TransactionRepo    transaction.Repository
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	GoalRepo    goal.Repository
	GoalService *goal.ServiceImpl
	GoalHandler *goal.Handler

	SummaryService     *summary.SummaryServiceImpl
	CsvSummaryRenderer *summary.CsvSummaryRendererImpl
	SummaryHandler     *summary.Handler

	KidsService kids.Service
	KidsHandler *kids.Handler

	RecipeService recipe.Service
	RecipeHandler *recipe.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.EnvelopeRepo = envelope.NewRepository(db)
	deps.EnvelopeService = envelope.NewService(deps.EnvelopeRepo, deps.EventBus, deps.Clock)
	deps.EnvelopeHandler = envelope.NewHandler(deps.EnvelopeService)

	deps.AccountRepo = account.NewRepository(db)
	deps.AccountService = account.NewService(deps.AccountRepo, deps.Clock)
	deps.AccountHandler = account.NewHandler(deps.AccountService)

	deps.TransactionRepo = transaction.NewRepository(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.EventBus, deps.Clock)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.GoalRepo = goal.NewRepository(db)
	deps.GoalService = goal.NewService(deps.GoalRepo, deps.Clock)
	deps.GoalService.SubscribeToTransactions(deps.EventBus)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.SummaryService = summary.NewSummaryService(deps.EnvelopeService, deps.AccountService, deps.Clock)
	deps.CsvSummaryRenderer = summary.NewCsvSummaryRenderer()
	deps.SummaryHandler = summary.NewHandler(deps.SummaryService, deps.CsvSummaryRenderer)

	deps.KidsService = kids.NewService(kids.NewRepository(db))
	deps.KidsHandler = kids.NewHandler(deps.KidsService)

	deps.RecipeService = recipe.NewService(recipe.NewRepository(db))
	deps.RecipeHandler = recipe.NewHandler(deps.RecipeService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth, deps.EnvelopeService, deps.Clock)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	return deps
}
