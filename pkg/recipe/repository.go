package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRecipeNotFound = errors.New("recipe not found")

type Repository interface {
	Store(ctx context.Context, userId int, recipe Recipe) (int, error)
	GetAll(ctx context.Context, userId int) ([]Recipe, error)
	Get(ctx context.Context, userId int, id int) (Recipe, error)
	Update(ctx context.Context, userId int, recipe Recipe) (bool, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)

	GetPlanEntries(ctx context.Context, userId int, from, to time.Time) ([]MealPlanEntry, error)
	// ReplacePlanEntries swaps out all entries in [from, to) for the given set.
	ReplacePlanEntries(ctx context.Context, userId int, from, to time.Time, entries []MealPlanEntry) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, recipe Recipe) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO recipe (user_id, name, ingredients, instructions, tags) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		userId, recipe.Name, recipe.Ingredients, recipe.Instructions, recipe.Tags).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store recipe: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Recipe, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, ingredients, instructions, tags FROM recipe WHERE user_id = $1 ORDER BY name", userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var recipe Recipe
		if err := rows.Scan(&recipe.Id, &recipe.Name, &recipe.Ingredients, &recipe.Instructions, &recipe.Tags); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int, id int) (Recipe, error) {
	var recipe Recipe
	err := r.db.QueryRow(ctx,
		"SELECT id, name, ingredients, instructions, tags FROM recipe WHERE user_id = $1 AND id = $2",
		userId, id).Scan(&recipe.Id, &recipe.Name, &recipe.Ingredients, &recipe.Instructions, &recipe.Tags)
	if errors.Is(err, pgx.ErrNoRows) {
		return Recipe{}, ErrRecipeNotFound
	}
	return recipe, err
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, recipe Recipe) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE recipe SET name = $1, ingredients = $2, instructions = $3, tags = $4 WHERE user_id = $5 AND id = $6",
		recipe.Name, recipe.Ingredients, recipe.Instructions, recipe.Tags, userId, recipe.Id)
	if err != nil {
		return false, fmt.Errorf("failed to update recipe: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM recipe WHERE user_id = $1 AND id = $2", userId, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) GetPlanEntries(ctx context.Context, userId int, from, to time.Time) ([]MealPlanEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, date, slot, recipe_id FROM meal_plan
		 WHERE user_id = $1 AND date >= $2 AND date < $3
		 ORDER BY date, slot`,
		userId, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal plan: %w", err)
	}
	defer rows.Close()

	var entries []MealPlanEntry
	for rows.Next() {
		var entry MealPlanEntry
		if err := rows.Scan(&entry.Id, &entry.Date, &entry.Slot, &entry.RecipeId); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *RepositoryImpl) ReplacePlanEntries(ctx context.Context, userId int, from, to time.Time, entries []MealPlanEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		"DELETE FROM meal_plan WHERE user_id = $1 AND date >= $2 AND date < $3", userId, from, to)
	if err != nil {
		return fmt.Errorf("failed to clear meal plan: %w", err)
	}
	for _, entry := range entries {
		_, err = tx.Exec(ctx,
			"INSERT INTO meal_plan (user_id, date, slot, recipe_id) VALUES ($1, $2, $3, $4)",
			userId, entry.Date, entry.Slot, entry.RecipeId)
		if err != nil {
			return fmt.Errorf("failed to store meal plan entry: %w", err)
		}
	}
	return tx.Commit(ctx)
}

var _ Repository = (*RepositoryImpl)(nil)
