package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrAccountNotFound = errors.New("account does not exist")

type Repository interface {
	Store(ctx context.Context, userId int, account Account) (int, error)
	GetAll(ctx context.Context, userId int) ([]Account, error)
	Get(ctx context.Context, userId int, id int) (Account, error)
	Update(ctx context.Context, userId int, account Account) (bool, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, account Account) (int, error) {
	query := `INSERT INTO account (name, institution, kind, balance, balance_as_of, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		account.Name,
		account.Institution,
		string(account.Kind),
		account.Balance,
		account.BalanceAsOf,
		userId,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to store account: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Account, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, institution, kind, balance, balance_as_of FROM account WHERE user_id = $1 ORDER BY name`,
		userId)
	if err != nil {
		log.Errorf("failed to query accounts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Errorf("failed to scan account: %v", err)
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int, id int) (Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, institution, kind, balance, balance_as_of FROM account WHERE id = $1 AND user_id = $2`,
		id, userId)
	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	} else if err != nil {
		log.Errorf("failed to get account %d: %v", id, err)
		return Account{}, err
	}
	return account, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, account Account) (bool, error) {
	query := `UPDATE account SET name = $1, institution = $2, kind = $3, balance = $4, balance_as_of = $5
				WHERE id = $6 AND user_id = $7`
	tag, err := r.db.Exec(ctx, query,
		account.Name,
		account.Institution,
		string(account.Kind),
		account.Balance,
		account.BalanceAsOf,
		account.Id,
		userId,
	)
	if err != nil {
		log.Errorf("failed to update account %d: %v", account.Id, err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM account WHERE id = $1 AND user_id = $2", id, userId)
	if err != nil {
		log.Errorf("failed to delete account %d: %v", id, err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanAccount(row pgx.Row) (Account, error) {
	var account Account
	var kind string
	var balanceAsOf time.Time
	err := row.Scan(
		&account.Id,
		&account.Name,
		&account.Institution,
		&kind,
		&account.Balance,
		&balanceAsOf,
	)
	if err != nil {
		return Account{}, err
	}
	account.Kind = Kind(kind)
	account.BalanceAsOf = balanceAsOf
	return account, nil
}
