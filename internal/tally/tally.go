package tally

import "github.com/vinser/gridsim/internal/simulation"

// Count holds the turn outcomes of one creature.
type Count struct {
	Moved   int
	Blocked int
	Skipped int
}

// Turns returns how many turns the creature got.
func (c Count) Turns() int {
	return c.Moved + c.Blocked + c.Skipped
}

// Tally counts turn outcomes per creature index.
type Tally struct {
	counts []Count
}

func New(creatures int) *Tally {
	return &Tally{counts: make([]Count, creatures)}
}

// Add records one executed turn.
func (t *Tally) Add(ev simulation.Event) {
	if ev.Actor < 0 || ev.Actor >= len(t.counts) {
		return
	}
	c := &t.counts[ev.Actor]
	switch {
	case !ev.Parsed:
		c.Skipped++
	case ev.Moved():
		c.Moved++
	default:
		c.Blocked++
	}
}

// Get returns the count for creature i.
func (t *Tally) Get(i int) Count {
	if i < 0 || i >= len(t.counts) {
		return Count{}
	}
	return t.counts[i]
}

// Total sums all creatures.
func (t *Tally) Total() Count {
	var sum Count
	for _, c := range t.counts {
		sum.Moved += c.Moved
		sum.Blocked += c.Blocked
		sum.Skipped += c.Skipped
	}
	return sum
}
