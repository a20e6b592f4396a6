package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repository interface {
	Store(ctx context.Context, userId int, goal Goal) (int, error)
	GetAll(ctx context.Context, userId int) ([]Goal, error)
	Get(ctx context.Context, userId int, id int) (Goal, error)
	Update(ctx context.Context, userId int, goal Goal) (bool, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
	// AdjustAmountByEnvelope moves the current amount of every goal linked
	// to the envelope by delta.
	AdjustAmountByEnvelope(ctx context.Context, userId int, envelopeId int, delta decimal.Decimal) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const goalColumns = "id, name, icon, envelope_id, target_amount, current_amount, target_date"

func (r *RepositoryImpl) Store(ctx context.Context, userId int, goal Goal) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO goal (user_id, name, icon, envelope_id, target_amount, current_amount, target_date)
		 VALUES ($1, $2, $3, NULLIF($4, 0), $5, $6, $7)
		 RETURNING id`,
		userId, goal.Name, goal.Icon, goal.EnvelopeId, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store goal: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+goalColumns+" FROM goal WHERE user_id = $1 ORDER BY name", userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int, id int) (Goal, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+goalColumns+" FROM goal WHERE user_id = $1 AND id = $2", userId, id)
	goal, err := scanGoal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Goal{}, ErrGoalNotFound
	}
	return goal, err
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE goal
		 SET name = $1, icon = $2, envelope_id = NULLIF($3, 0), target_amount = $4, current_amount = $5, target_date = $6
		 WHERE user_id = $7 AND id = $8`,
		goal.Name, goal.Icon, goal.EnvelopeId, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate,
		userId, goal.Id)
	if err != nil {
		return false, fmt.Errorf("failed to update goal: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM goal WHERE user_id = $1 AND id = $2", userId, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete goal: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) AdjustAmountByEnvelope(ctx context.Context, userId int, envelopeId int, delta decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		"UPDATE goal SET current_amount = current_amount + $1 WHERE user_id = $2 AND envelope_id = $3",
		delta, userId, envelopeId)
	if err != nil {
		return fmt.Errorf("failed to adjust goal amounts: %w", err)
	}
	return nil
}

func scanGoal(row pgx.Row) (Goal, error) {
	var goal Goal
	var envelopeId *int
	err := row.Scan(
		&goal.Id,
		&goal.Name,
		&goal.Icon,
		&envelopeId,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
	)
	if err != nil {
		return Goal{}, err
	}
	if envelopeId != nil {
		goal.EnvelopeId = *envelopeId
	}
	return goal, nil
}

var _ Repository = (*RepositoryImpl)(nil)
