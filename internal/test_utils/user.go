package test_utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateTestUser inserts a user row directly and returns its id, so
// repository tests can satisfy foreign keys without going through pkg/user.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, username string) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (uid, username, display_name, timezone, currency, pay_frequency, pay_amount)
		 VALUES ($1, $2, $3, 'UTC', 'USD', 'monthly', 0) RETURNING id`,
		uuid.New().String(), username, username,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}
