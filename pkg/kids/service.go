package kids

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/pkg/user"
)

// ErrNotEnoughPoints is returned when a reward costs more than the child has.
var ErrNotEnoughPoints = errors.New("not enough points for this reward")

// ErrChoreAlreadyDone is returned when completing a chore a second time.
var ErrChoreAlreadyDone = errors.New("chore is already done")

type Service interface {
	GetChildren(ctx context.Context) ([]Child, error)
	CreateChild(ctx context.Context, child Child) (Child, error)
	UpdateChild(ctx context.Context, child Child) (Child, error)
	DeleteChild(ctx context.Context, id int) (bool, error)

	GetChores(ctx context.Context, childId int) ([]Chore, error)
	CreateChore(ctx context.Context, chore Chore) (Chore, error)
	// CompleteChore marks the chore done and awards its points to the child.
	CompleteChore(ctx context.Context, id int) (Chore, error)
	DeleteChore(ctx context.Context, id int) (bool, error)

	GetRewards(ctx context.Context) ([]Reward, error)
	CreateReward(ctx context.Context, reward Reward) (Reward, error)
	// RedeemReward spends the reward's cost from the child's points.
	RedeemReward(ctx context.Context, rewardId int, childId int) (Child, error)
	DeleteReward(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetChildren(ctx context.Context) ([]Child, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetChildren(ctx, userId)
}

func (s *ServiceImpl) CreateChild(ctx context.Context, child Child) (Child, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Child{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if child.Name == "" {
		return Child{}, fmt.Errorf("child name is required")
	}
	id, err := s.repo.StoreChild(ctx, userId, child)
	if err != nil {
		return Child{}, err
	}
	child.Id = id
	return child, nil
}

func (s *ServiceImpl) UpdateChild(ctx context.Context, child Child) (Child, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Child{}, fmt.Errorf("failed to get current user: %w", err)
	}
	ok, err := s.repo.UpdateChild(ctx, userId, child)
	if err != nil {
		return Child{}, err
	}
	if !ok {
		return Child{}, ErrChildNotFound
	}
	return child, nil
}

func (s *ServiceImpl) DeleteChild(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteChild(ctx, userId, id)
}

func (s *ServiceImpl) GetChores(ctx context.Context, childId int) ([]Chore, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetChores(ctx, userId, childId)
}

func (s *ServiceImpl) CreateChore(ctx context.Context, chore Chore) (Chore, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Chore{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if chore.Name == "" {
		return Chore{}, fmt.Errorf("chore name is required")
	}
	if chore.Points < 0 {
		return Chore{}, fmt.Errorf("chore points cannot be negative")
	}
	if _, err := s.repo.GetChild(ctx, userId, chore.ChildId); err != nil {
		return Chore{}, err
	}
	chore.Done = false
	id, err := s.repo.StoreChore(ctx, userId, chore)
	if err != nil {
		return Chore{}, err
	}
	chore.Id = id
	return chore, nil
}

func (s *ServiceImpl) CompleteChore(ctx context.Context, id int) (Chore, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Chore{}, fmt.Errorf("failed to get current user: %w", err)
	}
	chore, err := s.repo.GetChore(ctx, userId, id)
	if err != nil {
		return Chore{}, err
	}
	if chore.Done {
		return Chore{}, ErrChoreAlreadyDone
	}
	chore.Done = true
	if _, err := s.repo.UpdateChore(ctx, userId, chore); err != nil {
		return Chore{}, err
	}
	if err := s.repo.AddPoints(ctx, userId, chore.ChildId, chore.Points); err != nil {
		return Chore{}, err
	}
	log.WithField("choreId", chore.Id).Debug("Chore completed")
	return chore, nil
}

func (s *ServiceImpl) DeleteChore(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteChore(ctx, userId, id)
}

func (s *ServiceImpl) GetRewards(ctx context.Context) ([]Reward, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetRewards(ctx, userId)
}

func (s *ServiceImpl) CreateReward(ctx context.Context, reward Reward) (Reward, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Reward{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if reward.Name == "" {
		return Reward{}, fmt.Errorf("reward name is required")
	}
	if reward.Cost <= 0 {
		return Reward{}, fmt.Errorf("reward cost must be positive")
	}
	id, err := s.repo.StoreReward(ctx, userId, reward)
	if err != nil {
		return Reward{}, err
	}
	reward.Id = id
	return reward, nil
}

func (s *ServiceImpl) RedeemReward(ctx context.Context, rewardId int, childId int) (Child, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Child{}, fmt.Errorf("failed to get current user: %w", err)
	}
	reward, err := s.repo.GetReward(ctx, userId, rewardId)
	if err != nil {
		return Child{}, err
	}
	child, err := s.repo.GetChild(ctx, userId, childId)
	if err != nil {
		return Child{}, err
	}
	if child.Points < reward.Cost {
		return Child{}, ErrNotEnoughPoints
	}
	if err := s.repo.AddPoints(ctx, userId, childId, -reward.Cost); err != nil {
		return Child{}, err
	}
	child.Points -= reward.Cost
	log.WithFields(log.Fields{"rewardId": rewardId, "childId": childId}).Debug("Reward redeemed")
	return child, nil
}

func (s *ServiceImpl) DeleteReward(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteReward(ctx, userId, id)
}
