// Package session holds the game state that outlives a single scene: the
// current stage number and the kill counter. Scenes are rebuilt on every stage
// clear; the session is not.
package session

import "github.com/google/uuid"

// State is the session-scoped stage record. Both counters only ever grow
// within a session.
type State struct {
	currentStage int
	kills        int
}

// CurrentStage returns the 1-based stage number.
func (s *State) CurrentStage() int {
	return s.currentStage
}

// Kills returns the number of enemies destroyed this session.
func (s *State) Kills() int {
	return s.kills
}

// AdvanceStage moves to the next stage. It is called once per stage clear.
func (s *State) AdvanceStage() {
	s.currentStage++
}

// RecordKill counts one destroyed enemy.
func (s *State) RecordKill() {
	s.kills++
}

// Store owns the live session. The zero Store has no session; Load reports it
// as absent until Begin is called.
type Store struct {
	id    uuid.UUID
	state *State
}

// NewStore returns a store with a fresh session starting at startStage.
func NewStore(startStage int) *Store {
	s := &Store{}
	s.Begin(startStage)
	return s
}

// Begin discards any current session and starts a new one. Stages below 1 are
// clamped to 1.
func (s *Store) Begin(startStage int) {
	if startStage < 1 {
		startStage = 1
	}
	s.id = uuid.New()
	s.state = &State{currentStage: startStage}
}

// End drops the current session.
func (s *Store) End() {
	s.id = uuid.Nil
	s.state = nil
}

// Load returns the live session state, or false when there is none.
func (s *Store) Load() (*State, bool) {
	if s == nil || s.state == nil {
		return nil, false
	}
	return s.state, true
}

// ID identifies the live session; uuid.Nil when there is none.
func (s *Store) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.id
}
