package kids

import (
	"context"
	"sort"
)

type StubRepository struct {
	nextId   int
	children map[int]Child
	chores   map[int]Chore
	rewards  map[int]Reward
}

func NewStubRepository() *StubRepository {
	return &StubRepository{
		children: map[int]Child{},
		chores:   map[int]Chore{},
		rewards:  map[int]Reward{},
	}
}

func (s *StubRepository) StoreChild(ctx context.Context, userId int, child Child) (int, error) {
	s.nextId++
	child.Id = s.nextId
	s.children[child.Id] = child
	return child.Id, nil
}

func (s *StubRepository) GetChildren(ctx context.Context, userId int) ([]Child, error) {
	children := make([]Child, 0, len(s.children))
	for _, child := range s.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
	return children, nil
}

func (s *StubRepository) GetChild(ctx context.Context, userId int, id int) (Child, error) {
	child, ok := s.children[id]
	if !ok {
		return Child{}, ErrChildNotFound
	}
	return child, nil
}

func (s *StubRepository) UpdateChild(ctx context.Context, userId int, child Child) (bool, error) {
	if _, ok := s.children[child.Id]; !ok {
		return false, nil
	}
	s.children[child.Id] = child
	return true, nil
}

func (s *StubRepository) DeleteChild(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.children[id]; !ok {
		return false, nil
	}
	delete(s.children, id)
	return true, nil
}

func (s *StubRepository) AddPoints(ctx context.Context, userId int, childId int, points int) error {
	child, ok := s.children[childId]
	if !ok {
		return ErrChildNotFound
	}
	child.Points += points
	s.children[childId] = child
	return nil
}

func (s *StubRepository) StoreChore(ctx context.Context, userId int, chore Chore) (int, error) {
	s.nextId++
	chore.Id = s.nextId
	s.chores[chore.Id] = chore
	return chore.Id, nil
}

func (s *StubRepository) GetChores(ctx context.Context, userId int, childId int) ([]Chore, error) {
	var chores []Chore
	for _, chore := range s.chores {
		if childId != 0 && chore.ChildId != childId {
			continue
		}
		chores = append(chores, chore)
	}
	sort.Slice(chores, func(i, j int) bool { return chores[i].Id < chores[j].Id })
	return chores, nil
}

func (s *StubRepository) GetChore(ctx context.Context, userId int, id int) (Chore, error) {
	chore, ok := s.chores[id]
	if !ok {
		return Chore{}, ErrChoreNotFound
	}
	return chore, nil
}

func (s *StubRepository) UpdateChore(ctx context.Context, userId int, chore Chore) (bool, error) {
	if _, ok := s.chores[chore.Id]; !ok {
		return false, nil
	}
	s.chores[chore.Id] = chore
	return true, nil
}

func (s *StubRepository) DeleteChore(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.chores[id]; !ok {
		return false, nil
	}
	delete(s.chores, id)
	return true, nil
}

func (s *StubRepository) StoreReward(ctx context.Context, userId int, reward Reward) (int, error) {
	s.nextId++
	reward.Id = s.nextId
	s.rewards[reward.Id] = reward
	return reward.Id, nil
}

func (s *StubRepository) GetRewards(ctx context.Context, userId int) ([]Reward, error) {
	rewards := make([]Reward, 0, len(s.rewards))
	for _, reward := range s.rewards {
		rewards = append(rewards, reward)
	}
	sort.Slice(rewards, func(i, j int) bool { return rewards[i].Cost < rewards[j].Cost })
	return rewards, nil
}

func (s *StubRepository) GetReward(ctx context.Context, userId int, id int) (Reward, error) {
	reward, ok := s.rewards[id]
	if !ok {
		return Reward{}, ErrRewardNotFound
	}
	return reward, nil
}

func (s *StubRepository) DeleteReward(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.rewards[id]; !ok {
		return false, nil
	}
	delete(s.rewards, id)
	return true, nil
}

func (s *StubRepository) Cleanup() {
	s.children = map[int]Child{}
	s.chores = map[int]Chore{}
	s.rewards = map[int]Reward{}
	s.nextId = 0
}
