package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/stashly/stashly/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id int) (Recipe, error)
	Create(ctx context.Context, recipe Recipe) (Recipe, error)
	Update(ctx context.Context, recipe Recipe) (Recipe, error)
	Delete(ctx context.Context, id int) (bool, error)

	// WeekPlan returns the meal plan for the Monday-to-Sunday week containing
	// the given date.
	WeekPlan(ctx context.Context, date time.Time) ([]MealPlanEntry, error)
	// ReplaceWeekPlan swaps out the plan for the week containing the date.
	ReplaceWeekPlan(ctx context.Context, date time.Time, entries []MealPlanEntry) ([]MealPlanEntry, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Recipe, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (Recipe, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Get(ctx, userId, id)
}

func (s *ServiceImpl) Create(ctx context.Context, recipe Recipe) (Recipe, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if recipe.Name == "" {
		return Recipe{}, fmt.Errorf("recipe name is required")
	}
	id, err := s.repo.Store(ctx, userId, recipe)
	if err != nil {
		return Recipe{}, err
	}
	recipe.Id = id
	return recipe, nil
}

func (s *ServiceImpl) Update(ctx context.Context, recipe Recipe) (Recipe, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if recipe.Name == "" {
		return Recipe{}, fmt.Errorf("recipe name is required")
	}
	ok, err := s.repo.Update(ctx, userId, recipe)
	if err != nil {
		return Recipe{}, err
	}
	if !ok {
		return Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

func (s *ServiceImpl) WeekPlan(ctx context.Context, date time.Time) ([]MealPlanEntry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	from, to := weekBounds(date)
	return s.repo.GetPlanEntries(ctx, userId, from, to)
}

func (s *ServiceImpl) ReplaceWeekPlan(ctx context.Context, date time.Time, entries []MealPlanEntry) ([]MealPlanEntry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	from, to := weekBounds(date)
	for _, entry := range entries {
		if !entry.Slot.IsValid() {
			return nil, fmt.Errorf("unknown meal slot: %s", entry.Slot)
		}
		if entry.Date.Before(from) || !entry.Date.Before(to) {
			return nil, fmt.Errorf("entry date %s falls outside the week being replaced", entry.Date.Format("2006-01-02"))
		}
	}
	if err := s.repo.ReplacePlanEntries(ctx, userId, from, to, entries); err != nil {
		return nil, err
	}
	return s.repo.GetPlanEntries(ctx, userId, from, to)
}

// weekBounds returns [Monday 00:00, next Monday 00:00) around the date.
func weekBounds(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 7)
}
