package envelope

import (
	"context"
	"sort"
)

type StubRepository struct {
	nextId int
	data   map[int]Envelope
}

func NewStubRepository() *StubRepository {
	return &StubRepository{nextId: 0, data: map[int]Envelope{}}
}

func (s *StubRepository) Store(ctx context.Context, userId int, envelope Envelope) (int, error) {
	s.nextId++
	envelope.Id = s.nextId
	s.data[envelope.Id] = envelope
	return envelope.Id, nil
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]Envelope, error) {
	envelopes := make([]Envelope, 0, len(s.data))
	for _, envelope := range s.data {
		envelopes = append(envelopes, envelope)
	}
	sort.Slice(envelopes, func(i, j int) bool {
		return envelopes[i].Position < envelopes[j].Position
	})
	return envelopes, nil
}

func (s *StubRepository) Get(ctx context.Context, userId int, id int) (Envelope, error) {
	envelope, ok := s.data[id]
	if !ok {
		return Envelope{}, ErrEnvelopeNotFound
	}
	return envelope, nil
}

func (s *StubRepository) Update(ctx context.Context, userId int, envelope Envelope) (bool, error) {
	stored, ok := s.data[envelope.Id]
	if !ok {
		return false, nil
	}
	// balance and position are not part of a definition update
	envelope.CurrentAmount = stored.CurrentAmount
	envelope.Position = stored.Position
	s.data[envelope.Id] = envelope
	return true, nil
}

func (s *StubRepository) UpdatePosition(ctx context.Context, userId int, envelope Envelope) (bool, error) {
	stored, ok := s.data[envelope.Id]
	if !ok {
		return false, nil
	}
	stored.Position = envelope.Position
	s.data[envelope.Id] = stored
	return true, nil
}

func (s *StubRepository) FindMaxPosition(ctx context.Context, userId int) (int, error) {
	maxPosition := 0
	for _, envelope := range s.data {
		if envelope.Position > maxPosition {
			maxPosition = envelope.Position
		}
	}
	return maxPosition, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]Envelope{}
	s.nextId = 0
}
