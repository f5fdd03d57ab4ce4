// Package session is the transient per-user step tracker for multi-message
// bot flows (e.g. entering a withdrawal wallet address). It is deliberately
// in-memory only: never a system of record, content is lost on restart.
package session

import (
	"context"
	"sync"
	"time"
)

type Step string

const (
	StepNone             Step = ""
	StepWithdrawalWallet Step = "withdrawal_wallet"
	StepDepositAmount    Step = "deposit_amount"
)

// State is one user's in-flight flow position plus free-form scratch data.
type State struct {
	Step Step
	Data map[string]string
}

type entry struct {
	state     State
	expiresAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[int64]entry
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[int64]entry),
		ttl:     ttl,
	}
}

func (s *Store) Set(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = entry{
		state:     state,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *Store) Get(userID int64) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		return State{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, userID)
		return State{}, false
	}
	return e.state, true
}

func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// StartJanitor periodically drops expired entries until the context ends.
func (s *Store) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.ttl)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Store) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
