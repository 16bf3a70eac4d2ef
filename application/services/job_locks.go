package services

import "sync"

// JobLocks hands out one read/write lock per job. Writers hold the exclusive lock
// for a whole ledger transaction; readers share it to see a consistent snapshot.
type JobLocks struct {
	mu    sync.Mutex
	locks map[uint64]*jobLock
}

type jobLock struct {
	sync.RWMutex
	refs int
}

// NewJobLocks creates an empty lock table.
func NewJobLocks() *JobLocks {
	return &JobLocks{locks: make(map[uint64]*jobLock)}
}

// Lock acquires the exclusive lock of a job and returns its release func.
func (l *JobLocks) Lock(jobID uint64) func() {
	lock := l.acquire(jobID)
	lock.Lock()
	return func() {
		lock.Unlock()
		l.release(jobID)
	}
}

// RLock acquires the shared lock of a job and returns its release func.
func (l *JobLocks) RLock(jobID uint64) func() {
	lock := l.acquire(jobID)
	lock.RLock()
	return func() {
		lock.RUnlock()
		l.release(jobID)
	}
}

func (l *JobLocks) acquire(jobID uint64) *jobLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[jobID]
	if !ok {
		lock = &jobLock{}
		l.locks[jobID] = lock
	}
	lock.refs++
	return lock
}

func (l *JobLocks) release(jobID uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock := l.locks[jobID]
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, jobID)
	}
}

func (l *JobLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
