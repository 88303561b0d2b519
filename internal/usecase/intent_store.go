package usecase

import (
	"sync"
	"time"

	"voltmarket/internal/domain/entity"
)

// RegistrationIntent carries the profile seed captured at registration time.
// Identity creation and profile-document creation are two separate remote
// operations with no transaction linking them; the intent bridges the gap so
// a profile can still be completed from a later login if the second write
// failed.
type RegistrationIntent struct {
	AccountType entity.AccountType
	FirstName   string
	LastName    string
	Phone       string
	CompanyName string
	StagedAt    time.Time
}

const intentTTL = 30 * time.Minute

type intentStore struct {
	mu      sync.Mutex
	byEmail map[string]RegistrationIntent
}

func newIntentStore() *intentStore {
	return &intentStore{
		byEmail: make(map[string]RegistrationIntent),
	}
}

func (s *intentStore) Put(email string, intent RegistrationIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent.StagedAt = time.Now()
	s.byEmail[email] = intent
	s.prune()
}

// Take consumes the staged intent. One-shot: a second Take for the same
// email misses.
func (s *intentStore) Take(email string) (RegistrationIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.byEmail[email]
	if !ok {
		return RegistrationIntent{}, false
	}
	delete(s.byEmail, email)
	if time.Since(intent.StagedAt) > intentTTL {
		return RegistrationIntent{}, false
	}
	return intent, true
}

func (s *intentStore) prune() {
	for email, intent := range s.byEmail {
		if time.Since(intent.StagedAt) > intentTTL {
			delete(s.byEmail, email)
		}
	}
}
