// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"sync"
	"time"

	"github.com/kusaridev/oauth-webclient/pkg/auth"
)

type entry struct {
	pending    *auth.Pending
	credential *auth.Credential
	expires    time.Time
}

// MemoryStore keeps sessions in process memory. Entries expire ttl after
// their last write; expired entries are swept at most once per ttl during
// writes, and entries holding nothing are dropped right away.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	sessions  map[string]*entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// lookup must be called with mu held.
func (s *MemoryStore) lookup(sessionID string, create bool) *entry {
	e, ok := s.sessions[sessionID]
	if ok && s.ttl > 0 && s.now().After(e.expires) {
		delete(s.sessions, sessionID)
		ok = false
	}
	if !ok {
		if !create {
			return nil
		}
		e = &entry{}
		s.sessions[sessionID] = e
	}
	return e
}

func (s *MemoryStore) touch(e *entry) {
	e.expires = s.now().Add(s.ttl)
}

// sweep must be called with mu held.
func (s *MemoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	if now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now
	for id, e := range s.sessions {
		if now.After(e.expires) {
			delete(s.sessions, id)
		}
	}
}

// dropIfEmpty must be called with mu held.
func (s *MemoryStore) dropIfEmpty(sessionID string, e *entry) {
	if e.pending == nil && e.credential == nil {
		delete(s.sessions, sessionID)
	}
}

func (s *MemoryStore) PutPending(_ context.Context, sessionID string, p auth.Pending) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	e := s.lookup(sessionID, true)
	e.pending = &p
	s.touch(e)
	return nil
}

func (s *MemoryStore) TakePending(_ context.Context, sessionID string) (*auth.Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(sessionID, false)
	if e == nil || e.pending == nil {
		return nil, auth.ErrNotFound
	}
	p := e.pending
	e.pending = nil
	s.dropIfEmpty(sessionID, e)
	return p, nil
}

func (s *MemoryStore) PutCredential(_ context.Context, sessionID string, cred auth.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	e := s.lookup(sessionID, true)
	e.credential = &cred
	s.touch(e)
	return nil
}

func (s *MemoryStore) Credential(_ context.Context, sessionID string) (*auth.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(sessionID, false)
	if e == nil || e.credential == nil {
		return nil, auth.ErrNotFound
	}
	cred := *e.credential
	return &cred, nil
}

func (s *MemoryStore) DeleteCredential(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.lookup(sessionID, false); e != nil {
		e.credential = nil
		s.dropIfEmpty(sessionID, e)
	}
	return nil
}
