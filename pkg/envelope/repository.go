package envelope

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

var ErrEnvelopeNotFound = errors.New("envelope does not exist")

type Repository interface {
	Store(ctx context.Context, userId int, envelope Envelope) (int, error)
	GetAll(ctx context.Context, userId int) ([]Envelope, error)
	Get(ctx context.Context, userId int, id int) (Envelope, error)
	Update(ctx context.Context, userId int, envelope Envelope) (bool, error)
	UpdatePosition(ctx context.Context, userId int, envelope Envelope) (bool, error)
	FindMaxPosition(ctx context.Context, userId int) (int, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const envelopeColumns = `id, name, icon, color, target_amount, current_amount, frequency, custom_weeks,
				next_due_date, is_spending, is_tracking_only, position`

func (r *RepositoryImpl) Store(ctx context.Context, userId int, envelope Envelope) (int, error) {
	query := `INSERT INTO envelope (name, icon, color, target_amount, current_amount, frequency, custom_weeks,
				next_due_date, is_spending, is_tracking_only, position, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		envelope.Name,
		envelope.Icon,
		envelope.Color,
		envelope.TargetAmount,
		envelope.CurrentAmount,
		string(envelope.Frequency),
		envelope.CustomWeeks,
		envelope.NextDueDate,
		envelope.IsSpending,
		envelope.IsTrackingOnly,
		envelope.Position,
		userId,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to store envelope: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Envelope, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+envelopeColumns+` FROM envelope WHERE user_id = $1 ORDER BY position`, userId)
	if err != nil {
		log.Errorf("failed to query envelopes: %v", err)
		return nil, err
	}
	defer rows.Close()

	var envelopes []Envelope
	for rows.Next() {
		envelope, err := scanEnvelope(rows)
		if err != nil {
			log.Errorf("failed to scan envelope: %v", err)
			return nil, err
		}
		envelopes = append(envelopes, envelope)
	}
	return envelopes, rows.Err()
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int, id int) (Envelope, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+envelopeColumns+` FROM envelope WHERE id = $1 AND user_id = $2`, id, userId)
	envelope, err := scanEnvelope(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Envelope{}, ErrEnvelopeNotFound
	} else if err != nil {
		log.Errorf("failed to get envelope %d: %v", id, err)
		return Envelope{}, err
	}
	return envelope, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, envelope Envelope) (bool, error) {
	query := `UPDATE envelope SET name = $1, icon = $2, color = $3, target_amount = $4, frequency = $5,
				custom_weeks = $6, next_due_date = $7, is_spending = $8, is_tracking_only = $9
				WHERE id = $10 AND user_id = $11`
	tag, err := r.db.Exec(ctx, query,
		envelope.Name,
		envelope.Icon,
		envelope.Color,
		envelope.TargetAmount,
		string(envelope.Frequency),
		envelope.CustomWeeks,
		envelope.NextDueDate,
		envelope.IsSpending,
		envelope.IsTrackingOnly,
		envelope.Id,
		userId,
	)
	if err != nil {
		log.Errorf("failed to update envelope %d: %v", envelope.Id, err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) UpdatePosition(ctx context.Context, userId int, envelope Envelope) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE envelope SET position = $1 WHERE id = $2 AND user_id = $3",
		envelope.Position, envelope.Id, userId)
	if err != nil {
		log.Errorf("failed to update envelope position: %v", err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) FindMaxPosition(ctx context.Context, userId int) (int, error) {
	var maxPosition *int
	err := r.db.QueryRow(ctx, "SELECT MAX(position) FROM envelope WHERE user_id = $1", userId).Scan(&maxPosition)
	if err != nil {
		log.Errorf("failed to find max envelope position: %v", err)
		return 0, err
	}
	if maxPosition == nil {
		return 0, nil
	}
	return *maxPosition, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM envelope WHERE id = $1 AND user_id = $2", id, userId)
	if err != nil {
		log.Errorf("failed to delete envelope %d: %v", id, err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanEnvelope(row pgx.Row) (Envelope, error) {
	var envelope Envelope
	var frequency string
	var targetAmount, currentAmount decimal.Decimal
	var nextDueDate *time.Time
	err := row.Scan(
		&envelope.Id,
		&envelope.Name,
		&envelope.Icon,
		&envelope.Color,
		&targetAmount,
		&currentAmount,
		&frequency,
		&envelope.CustomWeeks,
		&nextDueDate,
		&envelope.IsSpending,
		&envelope.IsTrackingOnly,
		&envelope.Position,
	)
	if err != nil {
		return Envelope{}, err
	}
	envelope.TargetAmount = targetAmount
	envelope.CurrentAmount = currentAmount
	envelope.Frequency = paycycle.BillFrequency(frequency)
	envelope.NextDueDate = nextDueDate
	return envelope, nil
}
