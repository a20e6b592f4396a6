package paycycle

import (
	"fmt"
	"time"
)

// DueProgress describes how close a due date is.
type DueProgress struct {
	// Progress is 0..100. It reaches 100 on the due date and stays there when
	// the date is in the past; there is no separate overdue state here.
	Progress      int
	RemainingDays int
	Label         string
	// Formatted is the due date as dd/MM/yyyy, empty when there is none.
	Formatted string
}

const dueDateLayout = "02/01/2006"

// DueProgressAt computes countdown progress towards a due date. The current
// time is a parameter so results are deterministic under test; callers
// normally pass Clock.Now(). A nil due date is a defined result, not an error.
func DueProgressAt(due *time.Time, now time.Time) DueProgress {
	if due == nil {
		return DueProgress{Label: "No due date"}
	}

	today := truncateToDay(now)
	dueDay := truncateToDay(due.In(now.Location()))

	// An overdue date clamps the window to zero width, which the floor below
	// turns into a full bar.
	windowStart := today
	if dueDay.Before(today) {
		windowStart = dueDay
	}
	totalDays := daysBetween(windowStart, dueDay)
	if totalDays < 1 {
		totalDays = 1
	}
	remaining := daysBetween(today, dueDay)
	if remaining < 0 {
		remaining = 0
	}

	progress := (totalDays - remaining) * 100 / totalDays
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	label := fmt.Sprintf("%d days left", remaining)
	if remaining == 0 {
		label = "Due today"
	}

	return DueProgress{
		Progress:      progress,
		RemainingDays: remaining,
		Label:         label,
		Formatted:     dueDay.Format(dueDateLayout),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
