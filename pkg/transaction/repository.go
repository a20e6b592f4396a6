package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrTransactionNotFound = errors.New("transaction not found")
var ErrEnvelopeMissing = errors.New("envelope does not exist")

type Filter struct {
	EnvelopeId int
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	// WithTransaction runs fn against a repository bound to a single
	// database transaction, committing on nil and rolling back on error.
	WithTransaction(ctx context.Context, fn func(repo Repository) error) error
	Store(ctx context.Context, userId int, transaction Transaction) (int, error)
	GetAll(ctx context.Context, userId int, filter Filter) ([]Transaction, error)
	Get(ctx context.Context, userId int, id int) (Transaction, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
	AdjustEnvelopeBalance(ctx context.Context, userId int, envelopeId int, delta decimal.Decimal) error
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RepositoryImpl struct {
	db *pgxpool.Pool
	tx pgx.Tx
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) conn() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *RepositoryImpl) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(&RepositoryImpl{db: r.db, tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const transactionColumns = "id, uid, envelope_id, counter_envelope_id, account_id, amount, kind, memo, occurred_at"

func (r *RepositoryImpl) Store(ctx context.Context, userId int, transaction Transaction) (int, error) {
	var id int
	err := r.conn().QueryRow(ctx,
		`INSERT INTO transaction (user_id, uid, envelope_id, counter_envelope_id, account_id, amount, kind, memo, occurred_at)
		 VALUES ($1, $2, $3, NULLIF($4, 0), NULLIF($5, 0), $6, $7, $8, $9)
		 RETURNING id`,
		userId,
		transaction.Uid,
		transaction.EnvelopeId,
		transaction.CounterEnvelopeId,
		transaction.AccountId,
		transaction.Amount,
		transaction.Kind,
		transaction.Memo,
		transaction.OccurredAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store transaction: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int, filter Filter) ([]Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transaction WHERE user_id = $1"
	args := []any{userId}
	if filter.EnvelopeId != 0 {
		args = append(args, filter.EnvelopeId)
		query += fmt.Sprintf(" AND (envelope_id = $%d OR counter_envelope_id = $%d)", len(args), len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND occurred_at < $%d", len(args))
	}
	query += " ORDER BY occurred_at DESC, id DESC"

	rows, err := r.conn().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int, id int) (Transaction, error) {
	row := r.conn().QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transaction WHERE user_id = $1 AND id = $2",
		userId, id)
	transaction, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, ErrTransactionNotFound
	}
	return transaction, err
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.conn().Exec(ctx,
		"DELETE FROM transaction WHERE user_id = $1 AND id = $2", userId, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) AdjustEnvelopeBalance(ctx context.Context, userId int, envelopeId int, delta decimal.Decimal) error {
	tag, err := r.conn().Exec(ctx,
		"UPDATE envelope SET current_amount = current_amount + $1 WHERE user_id = $2 AND id = $3",
		delta, userId, envelopeId)
	if err != nil {
		return fmt.Errorf("failed to adjust envelope balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEnvelopeMissing
	}
	return nil
}

func scanTransaction(row pgx.Row) (Transaction, error) {
	var transaction Transaction
	var counterEnvelopeId *int
	var accountId *int
	err := row.Scan(
		&transaction.Id,
		&transaction.Uid,
		&transaction.EnvelopeId,
		&counterEnvelopeId,
		&accountId,
		&transaction.Amount,
		&transaction.Kind,
		&transaction.Memo,
		&transaction.OccurredAt,
	)
	if err != nil {
		return Transaction{}, err
	}
	if counterEnvelopeId != nil {
		transaction.CounterEnvelopeId = *counterEnvelopeId
	}
	if accountId != nil {
		transaction.AccountId = *accountId
	}
	return transaction, nil
}

var _ Repository = (*RepositoryImpl)(nil)
