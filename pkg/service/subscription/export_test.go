package subscription

import "time"

// SetNow overrides the clock for tests
func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}
