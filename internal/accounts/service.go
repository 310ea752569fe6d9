package accounts

import (
	"github.com/bankist-dev/bankist/internal/id"
	"github.com/bankist-dev/bankist/internal/model"
)

// Service provides in-memory lookup over the account collection.
// It is not safe for concurrent use; the session controller serializes access.
type Service struct {
	accounts   []*model.Account
	byUsername map[string]*model.Account
}

// NewService creates a Service from a slice of accounts.
// Accounts without a username get one derived from the owner name.
func NewService(accts []*model.Account) *Service {
	s := &Service{byUsername: make(map[string]*model.Account, len(accts))}
	for _, a := range accts {
		if a.Username == "" {
			a.Username = id.Username(a.Owner)
		}
		s.accounts = append(s.accounts, a)
		s.byUsername[a.Username] = a
	}
	return s
}

// All returns all accounts in insertion order.
func (s *Service) All() []*model.Account {
	out := make([]*model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Get returns an account by username.
func (s *Service) Get(username string) (*model.Account, bool) {
	a, ok := s.byUsername[id.Normalize(username)]
	return a, ok
}

// Exists reports whether a username exists.
func (s *Service) Exists(username string) bool {
	_, ok := s.Get(username)
	return ok
}

// Len returns the number of accounts.
func (s *Service) Len() int {
	return len(s.accounts)
}

// Remove deletes exactly one account by username and reports whether it existed.
func (s *Service) Remove(username string) bool {
	a, ok := s.Get(username)
	if !ok {
		return false
	}
	delete(s.byUsername, a.Username)
	for i, cur := range s.accounts {
		if cur == a {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	return true
}
