package browser

// Sequencer numbers the requests of one pipeline so that only the response to
// the most recently issued request is applied. It is only touched from the
// Bubble Tea update loop.
type Sequencer struct {
	latest uint64
}

// Next issues a new sequence number, invalidating every earlier one.
func (s *Sequencer) Next() uint64 {
	s.latest++
	return s.latest
}

// IsLatest reports whether n is the most recently issued number.
func (s *Sequencer) IsLatest(n uint64) bool {
	return n != 0 && n == s.latest
}
