package goal

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

type StubRepository struct {
	nextId int
	data   map[int]Goal
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Goal{}}
}

func (s *StubRepository) Store(ctx context.Context, userId int, goal Goal) (int, error) {
	s.nextId++
	goal.Id = s.nextId
	s.data[goal.Id] = goal
	return goal.Id, nil
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	goals := make([]Goal, 0, len(s.data))
	for _, goal := range s.data {
		goals = append(goals, goal)
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].Name < goals[j].Name })
	return goals, nil
}

func (s *StubRepository) Get(ctx context.Context, userId int, id int) (Goal, error) {
	goal, ok := s.data[id]
	if !ok {
		return Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (s *StubRepository) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	if _, ok := s.data[goal.Id]; !ok {
		return false, nil
	}
	s.data[goal.Id] = goal
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) AdjustAmountByEnvelope(ctx context.Context, userId int, envelopeId int, delta decimal.Decimal) error {
	for id, goal := range s.data {
		if goal.EnvelopeId == envelopeId {
			goal.CurrentAmount = goal.CurrentAmount.Add(delta)
			s.data[id] = goal
		}
	}
	return nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]Goal{}
	s.nextId = 0
}
