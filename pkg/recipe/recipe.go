// Package recipe holds the household recipe book and the weekly meal plan.
package recipe

import "time"

type Recipe struct {
	Id           int
	Name         string
	Ingredients  []string
	Instructions string
	Tags         []string
}

// Slot is the meal of the day an entry is planned for.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

func (s Slot) IsValid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return true
	}
	return false
}

type MealPlanEntry struct {
	Id       int
	Date     time.Time
	Slot     Slot
	RecipeId int
}
