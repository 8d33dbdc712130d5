package testutil

import "sync"

// ScriptedSource returns predetermined draws for testing.
//
// Each value is returned as-is, so a value of 2 selects index 2 from any
// table longer than 2.
//
// Thread-safety: ScriptedSource is safe for concurrent use via internal mutex.
type ScriptedSource struct {
	mu    sync.Mutex
	draws []uint64
	idx   int
}

// NewScriptedSource creates a source that returns draws in order.
//
// Example:
//
//	src := NewScriptedSource(2, 0)
//	chord.FormatRandom(src, false) // "           Major | (4, 3, 4) | Bmaj7"
func NewScriptedSource(draws ...uint64) *ScriptedSource {
	return &ScriptedSource{draws: draws}
}

// Next returns the next scripted draw.
//
// Panics if all draws have been consumed, so a test that draws more than
// it scripted fails loudly.
func (s *ScriptedSource) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.draws) {
		panic("ScriptedSource: all draws exhausted")
	}
	v := s.draws[s.idx]
	s.idx++
	return v
}

// Remaining returns how many scripted draws have not been consumed.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.draws) - s.idx
}
