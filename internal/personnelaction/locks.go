package personnelaction

import "sync"

// employeeLocks serializes approvals per employee id. Two concurrent
// approvals touching the same employee must not interleave their
// read-modify-write of the record; distinct employees proceed in parallel.
type employeeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEmployeeLocks() *employeeLocks {
	return &employeeLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the employee id and returns its unlock func.
// Mutexes are retained for the process lifetime; the map is bounded by the
// number of distinct employees seen.
func (l *employeeLocks) Lock(employeeID string) func() {
	l.mu.Lock()
	m, ok := l.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[employeeID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
