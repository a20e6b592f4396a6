package envelope

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/event_bus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stashly/stashly/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]View, error)
	Get(ctx context.Context, id int) (View, error)
	Create(ctx context.Context, envelope Envelope) (Envelope, error)
	Update(ctx context.Context, envelope Envelope) (Envelope, error)
	Delete(ctx context.Context, id int) (bool, error)
	MoveAfter(ctx context.Context, id, precedingId int) (bool, error)
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewService(repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]View, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	envelopes, err := s.repo.GetAll(ctx, currentUser.Id)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(envelopes))
	for _, e := range envelopes {
		views = append(views, s.toView(e, currentUser.Settings.PayFrequency))
	}
	return views, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (View, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return View{}, fmt.Errorf("failed to get current user: %w", err)
	}
	envelope, err := s.repo.Get(ctx, currentUser.Id, id)
	if err != nil {
		return View{}, err
	}
	return s.toView(envelope, currentUser.Settings.PayFrequency), nil
}

func (s *ServiceImpl) Create(ctx context.Context, envelope Envelope) (Envelope, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(envelope, currentUser.Settings.PayFrequency); err != nil {
		return Envelope{}, err
	}

	maxPosition, err := s.repo.FindMaxPosition(ctx, currentUser.Id)
	if err != nil {
		return Envelope{}, err
	}
	envelope.Position = maxPosition + 100

	id, err := s.repo.Store(ctx, currentUser.Id, envelope)
	if err != nil {
		return Envelope{}, err
	}
	envelope.Id = id
	return envelope, nil
}

func (s *ServiceImpl) Update(ctx context.Context, envelope Envelope) (Envelope, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(envelope, currentUser.Settings.PayFrequency); err != nil {
		return Envelope{}, err
	}

	updated, err := s.repo.Update(ctx, currentUser.Id, envelope)
	if err != nil {
		return Envelope{}, err
	}
	if !updated {
		log.Warnf("envelope not updated, probably because it does not exist (%d) or the user (%d) is not the owner", envelope.Id, currentUser.Id)
		return Envelope{}, ErrEnvelopeNotFound
	}

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.EnvelopeUpdatedType, event_bus.EnvelopeUpdated{
		EnvelopeId:   envelope.Id,
		Name:         envelope.Name,
		TargetAmount: envelope.TargetAmount,
	})); err != nil {
		log.Errorf("failed to publish envelope update event: %v", err)
	}

	return envelope, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("envelope not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}

// MoveAfter places an envelope directly after precedingId in the user's
// ordering. Positions are kept sparse (steps of 100) so a move is usually a
// single-row update; when no gap is left the whole list is renumbered.
func (s *ServiceImpl) MoveAfter(ctx context.Context, id, precedingId int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	envelopes, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return false, err
	}
	if findEnvelope(id, envelopes) == -1 {
		return false, ErrEnvelopeNotFound
	}

	newPos := 0
	prevPos, nextPos := findPreviousAndNextPositions(precedingId, envelopes)
	if nextPos == -1 {
		newPos = prevPos + 100
	} else if nextPos-prevPos > 1 {
		newPos = prevPos + ((nextPos - prevPos) / 2)
	} else { // no space between prev and next - reorder all envelopes
		prevIdx := findEnvelope(precedingId, envelopes)
		reordered := append(envelopes[:prevIdx], append([]Envelope{envelopes[findEnvelope(id, envelopes)]}, envelopes[prevIdx+1:]...)...)
		if err := s.reorderEnvelopes(ctx, userId, reordered); err != nil {
			return false, err
		}
	}
	envelopeToMove := envelopes[findEnvelope(id, envelopes)]
	envelopeToMove.Position = newPos
	return s.repo.UpdatePosition(ctx, userId, envelopeToMove)
}

func (s *ServiceImpl) reorderEnvelopes(ctx context.Context, userId int, envelopes []Envelope) error {
	for i, envelope := range envelopes {
		envelope.Position = (i + 1) * 100
		if _, err := s.repo.UpdatePosition(ctx, userId, envelope); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServiceImpl) toView(e Envelope, payFreq paycycle.PayFrequency) View {
	status := paycycle.StatusOf(e.Snapshot())
	return View{
		Envelope:       e,
		PayCycleAmount: paycycle.ContributionPerPay(e.TargetAmount, e.Frequency, payFreq, e.CustomWeeks),
		Status:         status,
		StatusLabel:    status.DisplayLabel(),
		DueProgress:    paycycle.DueProgressAt(e.NextDueDate, s.clock.Now()),
	}
}

func validate(envelope Envelope, payFreq paycycle.PayFrequency) error {
	if envelope.Name == "" {
		return fmt.Errorf("envelope name is required")
	}
	if envelope.TargetAmount.Sign() < 0 {
		return fmt.Errorf("target amount must not be negative")
	}
	if envelope.Frequency != "" && !envelope.Frequency.IsValid() {
		return fmt.Errorf("unknown frequency: %s", envelope.Frequency)
	}
	// Reject the one input the calculator cannot represent: a custom-weeks
	// cadence without a week count would silently be costed as monthly.
	if _, err := paycycle.ContributionPerPayChecked(envelope.TargetAmount, envelope.Frequency, payFreq, envelope.CustomWeeks); err != nil {
		return err
	}
	return nil
}

func findPreviousAndNextPositions(previousId int, envelopes []Envelope) (int, int) {
	previousIdx := findEnvelope(previousId, envelopes)
	if previousIdx == -1 {
		return 0, envelopes[0].Position
	}
	previousPos := envelopes[previousIdx].Position
	if previousIdx == len(envelopes)-1 { // it is the last one
		return previousPos, -1
	}
	return previousPos, envelopes[previousIdx+1].Position
}

func findEnvelope(id int, envelopes []Envelope) int {
	for idx, envelope := range envelopes {
		if envelope.Id == id {
			return idx
		}
	}
	return -1
}
