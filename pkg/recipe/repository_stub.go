package recipe

import (
	"context"
	"sort"
	"time"
)

type StubRepository struct {
	nextId  int
	data    map[int]Recipe
	entries map[int]MealPlanEntry
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Recipe{}, entries: map[int]MealPlanEntry{}}
}

func (s *StubRepository) Store(ctx context.Context, userId int, recipe Recipe) (int, error) {
	s.nextId++
	recipe.Id = s.nextId
	s.data[recipe.Id] = recipe
	return recipe.Id, nil
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(s.data))
	for _, recipe := range s.data {
		recipes = append(recipes, recipe)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })
	return recipes, nil
}

func (s *StubRepository) Get(ctx context.Context, userId int, id int) (Recipe, error) {
	recipe, ok := s.data[id]
	if !ok {
		return Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *StubRepository) Update(ctx context.Context, userId int, recipe Recipe) (bool, error) {
	if _, ok := s.data[recipe.Id]; !ok {
		return false, nil
	}
	s.data[recipe.Id] = recipe
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) GetPlanEntries(ctx context.Context, userId int, from, to time.Time) ([]MealPlanEntry, error) {
	var entries []MealPlanEntry
	for _, entry := range s.entries {
		if entry.Date.Before(from) || !entry.Date.Before(to) {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Slot < entries[j].Slot
		}
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

func (s *StubRepository) ReplacePlanEntries(ctx context.Context, userId int, from, to time.Time, entries []MealPlanEntry) error {
	for id, entry := range s.entries {
		if !entry.Date.Before(from) && entry.Date.Before(to) {
			delete(s.entries, id)
		}
	}
	for _, entry := range entries {
		s.nextId++
		entry.Id = s.nextId
		s.entries[entry.Id] = entry
	}
	return nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]Recipe{}
	s.entries = map[int]MealPlanEntry{}
	s.nextId = 0
}
