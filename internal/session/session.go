// Package session tracks the formation state and which messages have
// been viewed. It is plain state with transition methods; the tick loop
// owns the single instance.
package session

// State machine: Idle -> Formed (one-way). Within Formed, a message is
// either open or not; Next/Previous wrap around the message count.
// Viewing the threshold-th distinct message reports completion exactly
// once, ever.
type State struct {
	count     int
	threshold int

	formed  bool
	open    int
	hasOpen bool

	viewed    map[int]struct{}
	completed bool
}

// New creates the session state for count messages. The completion
// threshold is clamped to count so short message lists can still
// complete.
func New(count, threshold int) *State {
	if threshold > count {
		threshold = count
	}
	return &State{
		count:     count,
		threshold: threshold,
		viewed:    make(map[int]struct{}),
	}
}

// Form triggers the one-way transition to the formed state. Calling it
// again is a no-op; there is no way back.
func (s *State) Form() {
	s.formed = true
}

func (s *State) Formed() bool {
	return s.formed
}

// Open displays message i and records it as viewed. It reports whether
// this call crossed the completion threshold. An out-of-range index is
// rejected without touching any state.
func (s *State) Open(i int) bool {
	if i < 0 || i >= s.count {
		return false
	}
	s.open = i
	s.hasOpen = true

	if _, seen := s.viewed[i]; seen {
		return false
	}
	s.viewed[i] = struct{}{}

	if !s.completed && len(s.viewed) >= s.threshold {
		s.completed = true
		return true
	}
	return false
}

// Close hides the open message. Viewed history is untouched.
func (s *State) Close() {
	s.hasOpen = false
}

// Next opens the following message, wrapping past the end. It is a
// no-op when nothing is open. Reports completion like Open.
func (s *State) Next() bool {
	if !s.hasOpen {
		return false
	}
	return s.Open((s.open + 1) % s.count)
}

// Previous opens the preceding message, wrapping past zero. It is a
// no-op when nothing is open. Reports completion like Open.
func (s *State) Previous() bool {
	if !s.hasOpen {
		return false
	}
	return s.Open((s.open + s.count - 1) % s.count)
}

// OpenIndex returns the open message index, if any.
func (s *State) OpenIndex() (int, bool) {
	return s.open, s.hasOpen
}

// ViewedCount is the number of distinct messages opened so far.
func (s *State) ViewedCount() int {
	return len(s.viewed)
}

// Completed reports whether the completion threshold has been reached.
func (s *State) Completed() bool {
	return s.completed
}
