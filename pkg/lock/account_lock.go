package lock

import (
	"sync"

	"github.com/google/uuid"
)

// AccountLocker serializes financial mutations per user account. Every
// check-then-act ledger operation (task claim, level purchase, withdrawal,
// roulette spin, deposit approval) must run with the owning user's lock held
// so that double-submitted requests cannot both pass their precondition
// check before either writes.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

// NewAccountLocker creates a new account locker.
func NewAccountLocker() *AccountLocker {
	return &AccountLocker{locks: make(map[uuid.UUID]*accountLock)}
}

// Lock acquires the lock for the given account, blocking until available.
func (l *AccountLocker) Lock(id uuid.UUID) {
	l.mu.Lock()
	al, ok := l.locks[id]
	if !ok {
		al = &accountLock{}
		l.locks[id] = al
	}
	al.refs++
	l.mu.Unlock()

	al.mu.Lock()
}

// Unlock releases the lock for the given account. Entries are dropped once
// no goroutine holds or waits on them.
func (l *AccountLocker) Unlock(id uuid.UUID) {
	l.mu.Lock()
	al, ok := l.locks[id]
	if ok {
		al.refs--
		if al.refs == 0 {
			delete(l.locks, id)
		}
	}
	l.mu.Unlock()

	if ok {
		al.mu.Unlock()
	}
}
