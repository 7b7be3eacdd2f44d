package content

import (
	"math/rand"
	"sync"
	"time"
)

// Picker rotates through a pool of lines without repeating any line until
// the whole pool has been used or the UTC day rolls over.
type Picker struct {
	mu        sync.Mutex
	pool      []string
	used      map[string]bool
	lastReset string // UTC date of the last daily reset, "2006-01-02"
	fallback  string
	rng       *rand.Rand
}

// NewPicker creates a Picker over pool. The fallback line is returned by
// Pick when the pool is empty.
func NewPicker(pool []string, fallback string) *Picker {
	return &Picker{
		pool:     append([]string(nil), pool...),
		used:     make(map[string]bool),
		fallback: fallback,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Pick selects a random line that has not been used today. Crossing a UTC
// day boundary clears the used set and reshuffles the pool; exhausting the
// pool clears the used set so repeats become possible. An empty pool yields
// the fallback line. Pick never fails.
func (p *Picker) Pick(now time.Time) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetIfNewDay(now)

	if len(p.pool) == 0 {
		return p.fallback
	}

	candidates := p.unused()
	if len(candidates) == 0 {
		p.used = make(map[string]bool)
		candidates = p.pool
	}

	choice := candidates[p.rng.Intn(len(candidates))]
	p.used[choice] = true
	return choice
}

// Reload replaces the pool and clears today's usage tracking.
func (p *Picker) Reload(pool []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pool = append([]string(nil), pool...)
	p.used = make(map[string]bool)
	p.shuffle()
}

// Size returns the number of lines in the pool.
func (p *Picker) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pool)
}

// UsedToday returns how many lines have been served since the last reset.
func (p *Picker) UsedToday() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.used)
}

func (p *Picker) resetIfNewDay(now time.Time) {
	today := now.UTC().Format("2006-01-02")
	if p.lastReset != today {
		p.used = make(map[string]bool)
		p.lastReset = today
		p.shuffle()
	}
}

func (p *Picker) unused() []string {
	out := make([]string, 0, len(p.pool))
	for _, s := range p.pool {
		if !p.used[s] {
			out = append(out, s)
		}
	}
	return out
}

// shuffle is cosmetic: selection stays uniform regardless of order.
func (p *Picker) shuffle() {
	p.rng.Shuffle(len(p.pool), func(i, j int) {
		p.pool[i], p.pool[j] = p.pool[j], p.pool[i]
	})
}
