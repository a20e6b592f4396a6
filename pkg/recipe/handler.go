package recipe

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/stashly/stashly/internal/rest"
)

type RecipeDTO struct {
	Id           int      `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type MealPlanEntryDTO struct {
	Id       int    `json:"id"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	RecipeId int    `json:"recipeId"`
}

const planDateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	recipes, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]RecipeDTO, 0, len(recipes))
	for _, recipe := range recipes {
		dtos = append(dtos, recipeToDTO(recipe))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recipe, err := h.service.Get(r.Context(), id)
	if errors.Is(err, ErrRecipeNotFound) {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(recipeToDTO(recipe)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto RecipeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dtoToRecipe(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipeToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto RecipeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != id {
		http.Error(w, "Invalid recipe id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), dtoToRecipe(dto))
	if errors.Is(err, ErrRecipeNotFound) {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := json.NewEncoder(w).Encode(recipeToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetWeekPlan serves the meal plan for the week containing the "date" query
// parameter (yyyy-MM-dd), defaulting to the current week.
func (h *Handler) GetWeekPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, err := planDate(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid date format", Details: "date must be yyyy-MM-dd"})
		return
	}

	entries, err := h.service.WeekPlan(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(entriesToDTO(entries)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ReplaceWeekPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, err := planDate(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid date format", Details: "date must be yyyy-MM-dd"})
		return
	}

	var dtos []MealPlanEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entries := make([]MealPlanEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := dtoToEntry(dto)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		entries = append(entries, entry)
	}

	updated, err := h.service.ReplaceWeekPlan(r.Context(), date, entries)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := json.NewEncoder(w).Encode(entriesToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func planDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse(planDateLayout, raw)
}

func entriesToDTO(entries []MealPlanEntry) []MealPlanEntryDTO {
	dtos := make([]MealPlanEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, MealPlanEntryDTO{
			Id:       entry.Id,
			Date:     entry.Date.Format(planDateLayout),
			Slot:     string(entry.Slot),
			RecipeId: entry.RecipeId,
		})
	}
	return dtos
}

func dtoToEntry(dto MealPlanEntryDTO) (MealPlanEntry, error) {
	date, err := time.Parse(planDateLayout, dto.Date)
	if err != nil {
		return MealPlanEntry{}, err
	}
	return MealPlanEntry{
		Id:       dto.Id,
		Date:     date,
		Slot:     Slot(dto.Slot),
		RecipeId: dto.RecipeId,
	}, nil
}

func recipeToDTO(recipe Recipe) RecipeDTO {
	return RecipeDTO{
		Id:           recipe.Id,
		Name:         recipe.Name,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Tags:         recipe.Tags,
	}
}

func dtoToRecipe(dto RecipeDTO) Recipe {
	return Recipe{
		Id:           dto.Id,
		Name:         dto.Name,
		Ingredients:  dto.Ingredients,
		Instructions: dto.Instructions,
		Tags:         dto.Tags,
	}
}
