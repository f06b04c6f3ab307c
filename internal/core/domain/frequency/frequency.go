/*
Package frequency defines the frequency table: the mapping from a unit of text
to the number of times it occurred. Tables built from separate sources are
combined with Merge into a single cumulative table.
*/
package frequency

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/unit"
)

// Entry is one unit and its occurrence count.
type Entry struct {
	Unit  string
	Count uint32
}

/*
Table counts occurrences of unit strings. Every stored count is at least one.
The zero value is an empty table ready to use. A Table is not safe for
concurrent use.
*/
type Table struct {
	counts map[string]uint32
}

// New returns an empty table.
func New() *Table {
	return &Table{counts: make(map[string]uint32)}
}

// FromUnits counts each occurrence of every unit.
func FromUnits(units []string) *Table {
	t := &Table{counts: make(map[string]uint32, len(units))}
	for _, u := range units {
		t.add(u, 1)
	}
	return t
}

// Count splits text by kind and counts the resulting units.
func Count(text string, kind unit.Kind) *Table {
	return FromUnits(unit.Split(text, kind))
}

// Merge adds each count to the entry for its unit, inserting missing units.
// Pairs with a zero count are ignored.
func (t *Table) Merge(items iter.Seq2[string, uint32]) {
	if items == nil {
		return
	}
	for u, c := range items {
		t.add(u, c)
	}
}

// MergeTable merges every entry of other into t. A nil other is a no-op.
func (t *Table) MergeTable(other *Table) {
	if other == nil {
		return
	}
	t.Merge(other.All())
}

func (t *Table) add(u string, c uint32) {
	if c == 0 {
		return
	}
	if t.counts == nil {
		t.counts = make(map[string]uint32)
	}
	cur := t.counts[u]
	if cur > math.MaxUint32-c {
		// saturate instead of wrapping
		t.counts[u] = math.MaxUint32
		return
	}
	t.counts[u] = cur + c
}

// All yields every unit and its count in map iteration order.
func (t *Table) All() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		if t == nil {
			return
		}
		for u, c := range t.counts {
			if !yield(u, c) {
				return
			}
		}
	}
}

// Get returns the count for u and whether u is present.
func (t *Table) Get(u string) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	c, ok := t.counts[u]
	return c, ok
}

// Len returns the number of distinct units.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, c := range t.All() {
		sum += uint64(c)
	}
	return sum
}

// IntoMap hands over the underlying map. The table is empty afterwards.
func (t *Table) IntoMap() map[string]uint32 {
	if t == nil || t.counts == nil {
		return map[string]uint32{}
	}
	m := t.counts
	t.counts = nil
	return m
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	if t == nil || t.counts == nil {
		return New()
	}
	return &Table{counts: maps.Clone(t.counts)}
}

/*
Ranked returns a snapshot of the table ordered by count, highest first.
Equal counts are ordered by unit in ascending byte order so the result does
not depend on map iteration order.
*/
func (t *Table) Ranked() []Entry {
	entries := make([]Entry, 0, t.Len())
	for u, c := range t.All() {
		entries = append(entries, Entry{Unit: u, Count: c})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if n := cmp.Compare(b.Count, a.Count); n != 0 {
			return n
		}
		return cmp.Compare(a.Unit, b.Unit)
	})
	return entries
}
