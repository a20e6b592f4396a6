package app

import (
	"github.com/gorilla/mux"
	"github.com/stashly/stashly/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Envelopes
	r.HandleFunc("/api/envelope", deps.EnvelopeHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/envelope", deps.EnvelopeHandler.Create).Methods("POST")
	r.HandleFunc("/api/envelope/{id}", deps.EnvelopeHandler.Get).Methods("GET")
	r.HandleFunc("/api/envelope/{id}", deps.EnvelopeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/envelope/{id}", deps.EnvelopeHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/envelope/{id}/position", deps.EnvelopeHandler.SetPosition).Methods("PUT")

	// Accounts
	r.HandleFunc("/api/account", deps.AccountHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/account", deps.AccountHandler.Create).Methods("POST")
	r.HandleFunc("/api/account/{id}", deps.AccountHandler.Update).Methods("PUT")
	r.HandleFunc("/api/account/{id}", deps.AccountHandler.Delete).Methods("DELETE")

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Get).Methods("GET")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Goals
	r.HandleFunc("/api/goal", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goal", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Get).Methods("GET")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Delete).Methods("DELETE")

	// Summary
	r.HandleFunc("/api/summary/monthly", deps.SummaryHandler.GetMonthly).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Kids
	r.HandleFunc("/api/kids/child", deps.KidsHandler.GetChildren).Methods("GET")
	r.HandleFunc("/api/kids/child", deps.KidsHandler.CreateChild).Methods("POST")
	r.HandleFunc("/api/kids/child/{id}", deps.KidsHandler.UpdateChild).Methods("PUT")
	r.HandleFunc("/api/kids/child/{id}", deps.KidsHandler.DeleteChild).Methods("DELETE")
	r.HandleFunc("/api/kids/chore", deps.KidsHandler.GetChores).Methods("GET")
	r.HandleFunc("/api/kids/chore", deps.KidsHandler.CreateChore).Methods("POST")
	r.HandleFunc("/api/kids/chore/{id}/complete", deps.KidsHandler.CompleteChore).Methods("POST")
	r.HandleFunc("/api/kids/chore/{id}", deps.KidsHandler.DeleteChore).Methods("DELETE")
	r.HandleFunc("/api/kids/reward", deps.KidsHandler.GetRewards).Methods("GET")
	r.HandleFunc("/api/kids/reward", deps.KidsHandler.CreateReward).Methods("POST")
	r.HandleFunc("/api/kids/reward/{id}/redeem", deps.KidsHandler.RedeemReward).Methods("POST")
	r.HandleFunc("/api/kids/reward/{id}", deps.KidsHandler.DeleteReward).Methods("DELETE")

	// Recipes and meal plan
	r.HandleFunc("/api/recipe", deps.RecipeHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/recipe", deps.RecipeHandler.Create).Methods("POST")
	r.HandleFunc("/api/recipe/{id}", deps.RecipeHandler.Get).Methods("GET")
	r.HandleFunc("/api/recipe/{id}", deps.RecipeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/recipe/{id}", deps.RecipeHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/mealplan", deps.RecipeHandler.GetWeekPlan).Methods("GET")
	r.HandleFunc("/api/mealplan", deps.RecipeHandler.ReplaceWeekPlan).Methods("PUT")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
	r.HandleFunc("/api/integrations/google/sync-due-dates", deps.GoogleHandler.SyncDueDates).Methods("POST")
}
