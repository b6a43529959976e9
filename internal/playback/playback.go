// Package playback runs server-side playback sessions. A session owns one
// ticker goroutine that advances a day counter modulo the series length; the
// viewer polls session state and the counter is the only mutable field.
package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Speeds are the only accepted playback multipliers on the one-tick-per-second
// base rate.
var Speeds = []float64{0.5, 1, 2, 4}

// ErrInvalidSpeed rejects speeds outside the fixed set.
var ErrInvalidSpeed = errors.New("playback: speed must be one of 0.5, 1, 2, 4")

// DefaultBaseInterval is the wall-clock duration of one day at speed 1.
const DefaultBaseInterval = time.Second

// State is the polled view of a session.
type State struct {
	ID       string  `json:"id"`
	SystemID string  `json:"system_id"`
	Speed    float64 `json:"speed"`
	Day      int     `json:"day"`
	Playing  bool    `json:"playing"`
}

type session struct {
	id       string
	systemID string
	speed    float64
	days     int

	mu      sync.RWMutex
	day     int
	playing bool

	stop chan struct{}
	done chan struct{}
}

func (s *session) state() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{ID: s.id, SystemID: s.systemID, Speed: s.speed, Day: s.day, Playing: s.playing}
}

func (s *session) run(interval time.Duration, onTick func()) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.day = (s.day + 1) % s.days
			s.mu.Unlock()
			if onTick != nil {
				onTick()
			}
		case <-s.stop:
			s.mu.Lock()
			s.playing = false
			s.mu.Unlock()
			return
		}
	}
}

// Manager creates, looks up, and stops sessions.
type Manager struct {
	base   time.Duration
	onTick func()

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewManager builds a manager. base is the speed-1 tick interval; onTick, if
// non-nil, is called after every day advance across all sessions.
func NewManager(base time.Duration, onTick func()) *Manager {
	if base <= 0 {
		base = DefaultBaseInterval
	}
	return &Manager{
		base:     base,
		onTick:   onTick,
		sessions: make(map[string]*session),
	}
}

// ValidSpeed reports whether speed is in the accepted set.
func ValidSpeed(speed float64) bool {
	for _, s := range Speeds {
		if speed == s {
			return true
		}
	}
	return false
}

// Start launches a new session over a days-long series, beginning at startDay.
func (m *Manager) Start(systemID string, days, startDay int, speed float64) (State, error) {
	if !ValidSpeed(speed) {
		return State{}, ErrInvalidSpeed
	}
	if days <= 0 {
		return State{}, errors.New("playback: series has no days")
	}
	if startDay < 0 || startDay >= days {
		startDay = 0
	}

	s := &session{
		id:       uuid.New().String(),
		systemID: systemID,
		speed:    speed,
		days:     days,
		day:      startDay,
		playing:  true,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	interval := time.Duration(float64(m.base) / speed)
	go s.run(interval, m.onTick)

	return s.state(), nil
}

// Get returns the current state of a session.
func (m *Manager) Get(id string) (State, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return State{}, false
	}
	return s.state(), true
}

// Stop halts a session's ticker and removes the session. Stopped sessions are
// gone: a subsequent Get misses.
func (m *Manager) Stop(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	close(s.stop)
	<-s.done
	return true
}

// StopAll halts every session; used during shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := make([]*session, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		close(s.stop)
		<-s.done
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
