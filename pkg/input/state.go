// Package input latches platform input for a single tick.
// Pointer motion is accumulated into one buffer that is cleared when a tick
// begins; key and button state is sampled once per tick so that every system
// sees the same snapshot.
package input

import "github.com/go-gl/mathgl/mgl32"

// Source answers "is this action currently held" for the current frame
type Source interface {
	Held(a Action) bool
}

// State is the input snapshot for one tick
type State struct {
	deltas []mgl32.Vec2

	held [actionCount]bool
	prev [actionCount]bool

	overUI bool
	dt     float32
}

// NewState creates an empty input state
func NewState() *State {
	return &State{deltas: make([]mgl32.Vec2, 0, 16)}
}

// BeginTick clears the pointer motion buffer
func (s *State) BeginTick() {
	s.deltas = s.deltas[:0]
}

// PushPointerDelta appends one pointer motion sample
func (s *State) PushPointerDelta(dx, dy float32) {
	s.deltas = append(s.deltas, mgl32.Vec2{dx, dy})
}

// Latch samples the held state of every action from src and derives press
// edges against the previous latch.
func (s *State) Latch(src Source, dt float32, overUI bool) {
	s.prev = s.held
	for _, a := range Actions {
		s.held[a] = src != nil && src.Held(a)
	}
	s.dt = dt
	s.overUI = overUI
}

// PointerDelta returns the sum of all motion samples pushed this tick
func (s *State) PointerDelta() mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range s.deltas {
		sum = sum.Add(d)
	}
	return sum
}

// Samples returns how many motion samples were pushed this tick
func (s *State) Samples() int {
	return len(s.deltas)
}

// Held reports whether a is held in the latched snapshot
func (s *State) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// JustPressed reports a press edge: held now, not held on the previous latch
func (s *State) JustPressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a] && !s.prev[a]
}

// Axis folds two opposing actions into -1, 0 or +1
func (s *State) Axis(positive, negative Action) float32 {
	var v float32
	if s.Held(positive) {
		v++
	}
	if s.Held(negative) {
		v--
	}
	return v
}

// DeltaTime returns the latched tick duration in seconds
func (s *State) DeltaTime() float32 {
	return s.dt
}

// PointerOverUI reports whether the pointer was over the overlay when latched
func (s *State) PointerOverUI() bool {
	return s.overUI
}
