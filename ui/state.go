package ui

// fetchPhase is the lifecycle of one screen-owned request.
type fetchPhase int

const (
	phaseIdle fetchPhase = iota
	phaseLoading
	phaseSuccess
	phaseError
)

// fetchState tracks a screen's in-flight request. Every Load bumps the
// generation counter; completions carry the generation they were started
// with, and stale completions are discarded so a superseded response can
// never overwrite newer state.
type fetchState struct {
	phase fetchPhase
	gen   int
	err   string
}

// Load transitions to loading and returns the generation the caller must
// attach to the eventual completion message.
func (s *fetchState) Load() int {
	s.gen++
	s.phase = phaseLoading
	s.err = ""
	return s.gen
}

// Succeed applies a successful completion. Returns false when the completion
// is stale and must be ignored.
func (s *fetchState) Succeed(gen int) bool {
	if gen != s.gen {
		return false
	}
	s.phase = phaseSuccess
	s.err = ""
	return true
}

// Fail applies a failed completion. Returns false when the completion is
// stale and must be ignored.
func (s *fetchState) Fail(gen int, reason string) bool {
	if gen != s.gen {
		return false
	}
	s.phase = phaseError
	s.err = reason
	return true
}

// Reset returns to idle without invalidating the generation counter.
func (s *fetchState) Reset() {
	s.phase = phaseIdle
	s.err = ""
}

func (s fetchState) Loading() bool { return s.phase == phaseLoading }
func (s fetchState) Failed() bool  { return s.phase == phaseError }
func (s fetchState) Err() string   { return s.err }
