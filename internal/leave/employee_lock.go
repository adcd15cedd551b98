package leave

import "sync"

// employeeLock serializes work per employee id. Entries are dropped once no
// goroutine holds or waits on them.
type employeeLock struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newEmployeeLock() *employeeLock {
	return &employeeLock{locks: make(map[string]*refMutex)}
}

// Lock blocks until employeeID is free and returns the matching unlock.
func (l *employeeLock) Lock(employeeID string) func() {
	l.mu.Lock()
	m, ok := l.locks[employeeID]
	if !ok {
		m = &refMutex{}
		l.locks[employeeID] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()

		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, employeeID)
		}
		l.mu.Unlock()
	}
}
