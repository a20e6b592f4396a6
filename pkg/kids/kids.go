// Package kids is the chores-and-rewards sub-app: children earn points by
// completing chores and spend them on rewards the parents define.
package kids

type Child struct {
	Id     int
	Name   string
	Avatar string
	Points int
}

type Chore struct {
	Id      int
	ChildId int
	Name    string
	// Points awarded to the child when the chore is completed.
	Points int
	Done   bool
}

type Reward struct {
	Id   int
	Name string
	Icon string
	// Cost in points.
	Cost int
}
