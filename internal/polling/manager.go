package polling

import (
	"fmt"
)

// Runner is the start/stop surface shared by all synchronizers regardless of
// their snapshot type.
type Runner interface {
	Start() error
	Stop()
}

// Manager coordinates the role synchronizers as one unit.
type Manager struct {
	runners []Runner
}

// NewManager creates a manager over the given synchronizers. Order matters:
// StartAll starts them in order and StopAll stops them in reverse.
func NewManager(runners ...Runner) *Manager {
	return &Manager{runners: runners}
}

// StartAll starts every synchronizer. If one fails to start, the already
// started ones are stopped again.
func (m *Manager) StartAll() error {
	for i, runner := range m.runners {
		if err := runner.Start(); err != nil {
			for j := i - 1; j >= 0; j-- {
				m.runners[j].Stop()
			}
			return fmt.Errorf("failed to start synchronizer %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops every synchronizer in reverse start order.
func (m *Manager) StopAll() {
	for i := len(m.runners) - 1; i >= 0; i-- {
		m.runners[i].Stop()
	}
}
