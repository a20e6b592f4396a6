package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/pkg/paycycle"
)

var ErrUserNotFound = errors.New("user does not exist")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

const userColumns = `id, uid, username, display_name, timezone, currency, pay_frequency, pay_amount,
				next_pay_date, calendar_sync, google_calendar_id`

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	calendarSync := user.Settings.CalendarSync
	if calendarSync == "" {
		calendarSync = NoCalendarSync
	}
	payFrequency := user.Settings.PayFrequency
	if payFrequency == "" {
		payFrequency = paycycle.PayMonthly
	}
	query := `INSERT INTO users (uid, username, display_name, timezone, currency, pay_frequency, pay_amount,
				next_pay_date, calendar_sync, google_calendar_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var id int
	err := u.db.QueryRow(ctx, query,
		user.Uid,
		user.Username,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.Currency,
		string(payFrequency),
		user.Settings.PayAmount,
		user.Settings.NextPayDate,
		string(calendarSync),
		user.Settings.GoogleCalendarId,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user %d: %v", id, err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE uid = $1`, uid)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user by uid %s: %v", uid, err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE users SET display_name = $1, timezone = $2, currency = $3, pay_frequency = $4,
				pay_amount = $5, next_pay_date = $6, calendar_sync = $7, google_calendar_id = $8 WHERE id = $9`
	tag, err := u.db.Exec(ctx, query,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.Currency,
		string(user.Settings.PayFrequency),
		user.Settings.PayAmount,
		user.Settings.NextPayDate,
		string(user.Settings.CalendarSync),
		user.Settings.GoogleCalendarId,
		userId,
	)
	if err != nil {
		log.Errorf("failed to update user %d: %v", userId, err)
		return User{}, err
	}
	if tag.RowsAffected() == 0 {
		return User{}, ErrUserNotFound
	}
	return u.GetUser(ctx, userId)
}

func (u *UserRepoImpl) DeleteUser(ctx context.Context, id int) error {
	_, err := u.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
		return err
	}
	return nil
}

func (u *UserRepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	rows, err := u.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		log.Errorf("failed to query users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (u *UserRepoImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	var count int
	err := u.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&count)
	if err != nil {
		log.Errorf("failed to check username availability: %v", err)
		return false, err
	}
	return count == 0, nil
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	var payFrequency, calendarSync string
	var payAmount decimal.Decimal
	var nextPayDate *time.Time
	var googleCalendarId *string
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Username,
		&user.DisplayName,
		&user.Settings.Timezone,
		&user.Settings.Currency,
		&payFrequency,
		&payAmount,
		&nextPayDate,
		&calendarSync,
		&googleCalendarId,
	)
	if err != nil {
		return User{}, err
	}
	user.Settings.PayFrequency = paycycle.PayFrequency(payFrequency)
	user.Settings.PayAmount = payAmount
	user.Settings.NextPayDate = nextPayDate
	user.Settings.CalendarSync = CalendarSyncType(calendarSync)
	if googleCalendarId != nil {
		user.Settings.GoogleCalendarId = *googleCalendarId
	}
	return user, nil
}
