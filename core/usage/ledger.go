package usage

import (
	"fmt"
	"sync"

	"github.com/mudler/xlog"
)

type Key interface{ ~int | ~int64 | ~string }

// Stats is an aggregate view of a Ledger at a point in time.
type Stats struct {
	Users    int `json:"users"`
	Messages int `json:"messages"`
}

// Ledger counts messages processed per user. Counts only grow and live as
// long as the process: a restart starts everyone from zero again.
type Ledger[K Key] struct {
	mu     sync.Mutex
	counts map[K]int
}

func NewLedger[K Key]() *Ledger[K] {
	return &Ledger[K]{
		counts: map[K]int{},
	}
}

// Increment records one more message for key and returns the new count.
func (l *Ledger[K]) Increment(key K) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[key]++
	count := l.counts[key]
	if count == 1 {
		xlog.Debug("First message from user", "key", fmt.Sprintf("%v", key))
	}
	return count
}

func (l *Ledger[K]) Count(key K) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.counts[key]
}

func (l *Ledger[K]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{Users: len(l.counts)}
	for _, c := range l.counts {
		s.Messages += c
	}
	return s
}
