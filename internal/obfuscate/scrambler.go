package obfuscate

import (
	"math/rand"
	"sync"
	"time"
	"unicode"
)

// DefaultInterval is the re-scramble cadence used when none is configured.
const DefaultInterval = 80 * time.Millisecond

var charset = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789#$%&?@!")

// Scrambler produces randomized stand-in text for obfuscated spans and owns
// the repeating timer that drives re-scrambling. It is explicitly owned
// state: callers start it, and Stop cancels it idempotently.
type Scrambler struct {
	interval time.Duration

	mu   sync.Mutex
	rng  *rand.Rand
	stop chan struct{}
}

// New creates a Scrambler with the given tick interval. Non-positive
// intervals fall back to DefaultInterval.
func New(interval time.Duration) *Scrambler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scrambler{
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Interval returns the effective tick interval.
func (s *Scrambler) Interval() time.Duration {
	return s.interval
}

// Scramble returns text of the same rune length with every non-space rune
// replaced by a random character. Whitespace keeps its position so word
// shapes stay stable while scrambling.
func (s *Scrambler) Scramble(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	runes := []rune(text)
	for i, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		runes[i] = charset[s.rng.Intn(len(charset))]
	}
	return string(runes)
}

// Start invokes fn on every tick until Stop is called. Calling Start while
// already running is a no-op.
func (s *Scrambler) Start(fn func()) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancels the timer. Safe to call repeatedly or before Start.
func (s *Scrambler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
}
