package kids

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrChildNotFound = errors.New("child not found")
var ErrChoreNotFound = errors.New("chore not found")
var ErrRewardNotFound = errors.New("reward not found")

type Repository interface {
	StoreChild(ctx context.Context, userId int, child Child) (int, error)
	GetChildren(ctx context.Context, userId int) ([]Child, error)
	GetChild(ctx context.Context, userId int, id int) (Child, error)
	UpdateChild(ctx context.Context, userId int, child Child) (bool, error)
	DeleteChild(ctx context.Context, userId int, id int) (bool, error)
	AddPoints(ctx context.Context, userId int, childId int, points int) error

	StoreChore(ctx context.Context, userId int, chore Chore) (int, error)
	GetChores(ctx context.Context, userId int, childId int) ([]Chore, error)
	GetChore(ctx context.Context, userId int, id int) (Chore, error)
	UpdateChore(ctx context.Context, userId int, chore Chore) (bool, error)
	DeleteChore(ctx context.Context, userId int, id int) (bool, error)

	StoreReward(ctx context.Context, userId int, reward Reward) (int, error)
	GetRewards(ctx context.Context, userId int) ([]Reward, error)
	GetReward(ctx context.Context, userId int, id int) (Reward, error)
	DeleteReward(ctx context.Context, userId int, id int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreChild(ctx context.Context, userId int, child Child) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO kids_child (user_id, name, avatar, points) VALUES ($1, $2, $3, $4) RETURNING id",
		userId, child.Name, child.Avatar, child.Points).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store child: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) GetChildren(ctx context.Context, userId int) ([]Child, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, avatar, points FROM kids_child WHERE user_id = $1 ORDER BY name", userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	defer rows.Close()

	var children []Child
	for rows.Next() {
		var child Child
		if err := rows.Scan(&child.Id, &child.Name, &child.Avatar, &child.Points); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, rows.Err()
}

func (r *RepositoryImpl) GetChild(ctx context.Context, userId int, id int) (Child, error) {
	var child Child
	err := r.db.QueryRow(ctx,
		"SELECT id, name, avatar, points FROM kids_child WHERE user_id = $1 AND id = $2",
		userId, id).Scan(&child.Id, &child.Name, &child.Avatar, &child.Points)
	if errors.Is(err, pgx.ErrNoRows) {
		return Child{}, ErrChildNotFound
	}
	return child, err
}

func (r *RepositoryImpl) UpdateChild(ctx context.Context, userId int, child Child) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE kids_child SET name = $1, avatar = $2, points = $3 WHERE user_id = $4 AND id = $5",
		child.Name, child.Avatar, child.Points, userId, child.Id)
	if err != nil {
		return false, fmt.Errorf("failed to update child: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) DeleteChild(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM kids_child WHERE user_id = $1 AND id = $2", userId, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete child: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) AddPoints(ctx context.Context, userId int, childId int, points int) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE kids_child SET points = points + $1 WHERE user_id = $2 AND id = $3",
		points, userId, childId)
	if err != nil {
		return fmt.Errorf("failed to adjust points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrChildNotFound
	}
	return nil
}

func (r *RepositoryImpl) StoreChore(ctx context.Context, userId int, chore Chore) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO kids_chore (user_id, child_id, name, points, done) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		userId, chore.ChildId, chore.Name, chore.Points, chore.Done).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store chore: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) GetChores(ctx context.Context, userId int, childId int) ([]Chore, error) {
	query := "SELECT id, child_id, name, points, done FROM kids_chore WHERE user_id = $1"
	args := []any{userId}
	if childId != 0 {
		query += " AND child_id = $2"
		args = append(args, childId)
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chores: %w", err)
	}
	defer rows.Close()

	var chores []Chore
	for rows.Next() {
		var chore Chore
		if err := rows.Scan(&chore.Id, &chore.ChildId, &chore.Name, &chore.Points, &chore.Done); err != nil {
			return nil, err
		}
		chores = append(chores, chore)
	}
	return chores, rows.Err()
}

func (r *RepositoryImpl) GetChore(ctx context.Context, userId int, id int) (Chore, error) {
	var chore Chore
	err := r.db.QueryRow(ctx,
		"SELECT id, child_id, name, points, done FROM kids_chore WHERE user_id = $1 AND id = $2",
		userId, id).Scan(&chore.Id, &chore.ChildId, &chore.Name, &chore.Points, &chore.Done)
	if errors.Is(err, pgx.ErrNoRows) {
		return Chore{}, ErrChoreNotFound
	}
	return chore, err
}

func (r *RepositoryImpl) UpdateChore(ctx context.Context, userId int, chore Chore) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE kids_chore SET child_id = $1, name = $2, points = $3, done = $4 WHERE user_id = $5 AND id = $6",
		chore.ChildId, chore.Name, chore.Points, chore.Done, userId, chore.Id)
	if err != nil {
		return false, fmt.Errorf("failed to update chore: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) DeleteChore(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM kids_chore WHERE user_id = $1 AND id = $2", userId, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete chore: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) StoreReward(ctx context.Context, userId int, reward Reward) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO kids_reward (user_id, name, icon, cost) VALUES ($1, $2, $3, $4) RETURNING id",
		userId, reward.Name, reward.Icon, reward.Cost).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store reward: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) GetRewards(ctx context.Context, userId int) ([]Reward, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, icon, cost FROM kids_reward WHERE user_id = $1 ORDER BY cost", userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	var rewards []Reward
	for rows.Next() {
		var reward Reward
		if err := rows.Scan(&reward.Id, &reward.Name, &reward.Icon, &reward.Cost); err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, rows.Err()
}

func (r *RepositoryImpl) GetReward(ctx context.Context, userId int, id int) (Reward, error) {
	var reward Reward
	err := r.db.QueryRow(ctx,
		"SELECT id, name, icon, cost FROM kids_reward WHERE user_id = $1 AND id = $2",
		userId, id).Scan(&reward.Id, &reward.Name, &reward.Icon, &reward.Cost)
	if errors.Is(err, pgx.ErrNoRows) {
		return Reward{}, ErrRewardNotFound
	}
	return reward, err
}

func (r *RepositoryImpl) DeleteReward(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM kids_reward WHERE user_id = $1 AND id = $2", userId, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete reward: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

var _ Repository = (*RepositoryImpl)(nil)
