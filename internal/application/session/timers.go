package session

import "time"

// restTimer is the per-set rest countdown. It runs independently of session
// state: the member can keep editing sets while it counts down, and can
// dismiss it early.
type restTimer struct {
	remaining int
	initial   int
	active    bool
	cancel    chan struct{}
}

// startElapsedTicker starts the overall elapsed ticker at the configured
// tick interval (one second in production). Ticks apply only while the phase
// stays running; stopping is tied to the state transitions out of running,
// never to any UI lifecycle.
// Callers hold e.mu.
func (e *Engine) startElapsedTicker(rs *runState) {
	stopTicker(&rs.ticker)
	cancel := make(chan struct{})
	rs.ticker = cancel

	go func() {
		ticker := time.NewTicker(e.deps.Tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.mu.Lock()
				if rs.phase == StateRunning {
					rs.elapsed++
				}
				e.mu.Unlock()
			case <-cancel:
				return
			}
		}
	}()
}

// scheduleRest replaces any running countdown with a fresh one of the given
// duration. The countdown expires on its own or via DismissRest.
// Callers hold e.mu.
func (e *Engine) scheduleRest(rs *runState, seconds int) {
	e.stopRest(rs)
	rt := &restTimer{
		remaining: seconds,
		initial:   seconds,
		active:    true,
		cancel:    make(chan struct{}),
	}
	rs.rest = rt

	go func() {
		ticker := time.NewTicker(e.deps.Tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.mu.Lock()
				if !rt.active {
					e.mu.Unlock()
					return
				}
				rt.remaining--
				if rt.remaining <= 0 {
					rt.remaining = 0
					rt.active = false
					e.mu.Unlock()
					return
				}
				e.mu.Unlock()
			case <-rt.cancel:
				return
			}
		}
	}()
}

// stopRest deactivates and cancels the user's rest countdown, if any.
// Callers hold e.mu.
func (e *Engine) stopRest(rs *runState) {
	if rs.rest != nil && rs.rest.active {
		rs.rest.active = false
		close(rs.rest.cancel)
	}
}

// RestRemaining reports the rest countdown for a user: seconds remaining,
// the initial duration, and whether it is still ticking.
func (e *Engine) RestRemaining(userID string) (remaining, initial int, active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rs, ok := e.users[userID]
	if !ok || rs.rest == nil {
		return 0, 0, false
	}
	return rs.rest.remaining, rs.rest.initial, rs.rest.active
}

// DismissRest cancels the user's rest countdown early. No further ticks
// occur after dismissal.
func (e *Engine) DismissRest(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rs, ok := e.users[userID]; ok {
		e.stopRest(rs)
	}
}

// stopTicker closes and clears a ticker cancel channel.
func stopTicker(cancel *chan struct{}) {
	if *cancel != nil {
		close(*cancel)
		*cancel = nil
	}
}
