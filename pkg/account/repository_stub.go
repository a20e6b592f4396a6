package account

import "context"

type StubRepository struct {
	nextId int
	data   map[int]Account
}

func NewStubRepository() *StubRepository {
	return &StubRepository{nextId: 0, data: map[int]Account{}}
}

func (s *StubRepository) Store(ctx context.Context, userId int, account Account) (int, error) {
	s.nextId++
	account.Id = s.nextId
	s.data[account.Id] = account
	return account.Id, nil
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]Account, error) {
	accounts := make([]Account, 0, len(s.data))
	for _, account := range s.data {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (s *StubRepository) Get(ctx context.Context, userId int, id int) (Account, error) {
	account, ok := s.data[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return account, nil
}

func (s *StubRepository) Update(ctx context.Context, userId int, account Account) (bool, error) {
	if _, ok := s.data[account.Id]; !ok {
		return false, nil
	}
	s.data[account.Id] = account
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]Account{}
	s.nextId = 0
}
