// Package mirror holds read store implementations that live outside the ledger database.
package mirror

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// memoryStore implements the ReadStore interface in process memory.
type memoryStore struct {
	mu        sync.RWMutex
	jobs      map[uint64]entities.JobProjection
	referrals map[uint64]entities.ReferralProjection
}

// NewMemoryStore creates an empty in-memory read store.
func NewMemoryStore() interfaces.ReadStore {
	return &memoryStore{
		jobs:      make(map[uint64]entities.JobProjection),
		referrals: make(map[uint64]entities.ReferralProjection),
	}
}

// GetJob returns the projection of a job.
func (s *memoryStore) GetJob(_ context.Context, jobID uint64) (*entities.JobProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.jobs[jobID]
	if !ok {
		return nil, errors.NewDomainError(errors.ErrNotFound, fmt.Sprintf("job projection %d", jobID))
	}
	return &p, nil
}

// GetReferral returns the projection of a referral.
func (s *memoryStore) GetReferral(_ context.Context, referralID uint64) (*entities.ReferralProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.referrals[referralID]
	if !ok {
		return nil, errors.NewDomainError(errors.ErrNotFound, fmt.Sprintf("referral projection %d", referralID))
	}
	return &p, nil
}

// ListReferralsByJob returns the projected referrals of a job ordered by ID.
func (s *memoryStore) ListReferralsByJob(_ context.Context, jobID uint64) ([]entities.ReferralProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []entities.ReferralProjection
	for _, p := range s.referrals {
		if p.JobID == jobID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReferralID < result[j].ReferralID
	})
	return result, nil
}

// UpsertJob stores p unless a newer or identical projection is present.
func (s *memoryStore) UpsertJob(_ context.Context, p entities.JobProjection) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.jobs[p.JobID]; ok {
		if current.Version > p.Version || current.Matches(p) {
			return false, nil
		}
	}
	s.jobs[p.JobID] = p
	return true, nil
}

// UpsertReferral stores p unless a newer or identical projection is present.
func (s *memoryStore) UpsertReferral(_ context.Context, p entities.ReferralProjection) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.referrals[p.ReferralID]; ok {
		if current.Version > p.Version || current.Matches(p) {
			return false, nil
		}
	}
	s.referrals[p.ReferralID] = p
	return true, nil
}

// OverwriteJob stores p.
func (s *memoryStore) OverwriteJob(_ context.Context, p entities.JobProjection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[p.JobID] = p
	return nil
}

// OverwriteReferral stores p.
func (s *memoryStore) OverwriteReferral(_ context.Context, p entities.ReferralProjection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals[p.ReferralID] = p
	return nil
}
