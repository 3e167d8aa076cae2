package lemonade

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is the mutable state of one lemonade screen.
type Session struct {
	ID           string
	State        State
	RequiredTaps int // squeezes needed to reach Drinking; even, in [2, 8]
	CurrentTaps  int // squeezes so far; zero outside Squeezing
	Cycles       int // completed Restarting → Lemon transitions

	roll Roller
}

// Snapshot is a read-only copy of a Session's counters.
type Snapshot struct {
	State        State
	RequiredTaps int
	CurrentTaps  int
	Cycles       int
}

// NewSession returns a Session at Lemon with a freshly rolled threshold.
// A nil roll uses GenerateEvenThreshold.
func NewSession(roll Roller) *Session {
	if roll == nil {
		roll = GenerateEvenThreshold
	}
	s := &Session{
		ID:    uuid.New().String(),
		State: Lemon,
		roll:  roll,
	}
	s.RequiredTaps = s.rollThreshold()
	return s
}

// Advance applies one tap.
func (s *Session) Advance() {
	switch s.State {
	case Lemon:
		s.State = Squeezing
	case Squeezing:
		s.CurrentTaps++
		if s.CurrentTaps >= s.RequiredTaps {
			s.CurrentTaps = 0
			s.State = Drinking
		}
	case Drinking:
		s.State = EmptyGlass
	case EmptyGlass:
		s.State = Restarting
	case Restarting:
		s.RequiredTaps = s.rollThreshold()
		s.Cycles++
		s.State = Lemon
	default:
		mustValid(s.State)
	}
}

// Asset returns the image and caption for the current state.
func (s *Session) Asset() Asset {
	return s.State.Asset()
}

// Snapshot copies the session's counters.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.State,
		RequiredTaps: s.RequiredTaps,
		CurrentTaps:  s.CurrentTaps,
		Cycles:       s.Cycles,
	}
}

func (s *Session) rollThreshold() int {
	n := s.roll()
	if !ValidThreshold(n) {
		panic(fmt.Sprintf("lemonade: threshold %d outside {2,4,6,8}", n))
	}
	return n
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s taps=%d/%d cycles=%d", s.State, s.CurrentTaps, s.RequiredTaps, s.Cycles)
}
