// Package equity resolves precomputed head-to-head equities between hand
// classes and aggregates them into a hero's equity against a range.
package equity

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/opencoff/go-chd"

	"github.com/lox/pokertrainer/analysis"
)

var (
	// ErrMalformedTable is returned when table data cannot be decoded.
	ErrMalformedTable = errors.New("malformed equity table")
	// ErrTableNotLoaded is returned by operations that need a table when none is available.
	ErrTableNotLoaded = errors.New("equity table not loaded")
)

const keySeparator = " vs "

// chdLoad is the load factor used when freezing the perfect hash.
const chdLoad = 0.9

// Entry is the precomputed all-in equity of class A against class B, in percent.
type Entry struct {
	A, B             analysis.Notation
	EquityA, EquityB float64
}

// Key returns the "<A> vs <B>" key of the entry.
func (e Entry) Key() string {
	return FormatKey(e.A, e.B)
}

// Metadata describes how a table was produced.
type Metadata struct {
	ID      string
	Samples int
}

// Table is an immutable mapping from ordered class pairs to equities.
// It is safe for concurrent use.
type Table struct {
	meta    Metadata
	entries []Entry
	keys    []uint64
	slots   []int32
	index   *chd.Chd
}

// FormatKey returns the table key for a pairing, e.g. "AKs vs QQ".
func FormatKey(a, b analysis.Notation) string {
	return a.String() + keySeparator + b.String()
}

// ParseKey splits a "<A> vs <B>" key into its two classes.
func ParseKey(key string) (analysis.Notation, analysis.Notation, error) {
	left, right, ok := strings.Cut(key, keySeparator)
	if !ok {
		return analysis.Notation{}, analysis.Notation{}, fmt.Errorf("%w: key %q lacks %q", ErrMalformedTable, key, strings.TrimSpace(keySeparator))
	}
	a, err := analysis.ParseNotation(left)
	if err != nil {
		return analysis.Notation{}, analysis.Notation{}, fmt.Errorf("%w: key %q: %w", ErrMalformedTable, key, err)
	}
	b, err := analysis.ParseNotation(right)
	if err != nil {
		return analysis.Notation{}, analysis.Notation{}, fmt.Errorf("%w: key %q: %w", ErrMalformedTable, key, err)
	}
	return a, b, nil
}

// packKey maps an ordered class pair to a non-zero uint64 hash key.
func packKey(a, b analysis.Notation) uint64 {
	return uint64(a.Index()+1)<<16 | uint64(b.Index()+1)
}

// NewTable builds a table from "<A> vs <B>" keys mapped to the equity of A
// and the equity of B.
func NewTable(meta Metadata, raw map[string][2]float64) (*Table, error) {
	entries := make([]Entry, 0, len(raw))
	for key, pct := range raw {
		a, b, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		for _, p := range pct {
			if p < 0 || p > 100 {
				return nil, fmt.Errorf("%w: %q has equity %v outside [0,100]", ErrMalformedTable, key, p)
			}
		}
		entries = append(entries, Entry{A: a, B: b, EquityA: pct[0], EquityB: pct[1]})
	}
	return newTable(meta, entries)
}

func newTable(meta Metadata, entries []Entry) (*Table, error) {
	slices.SortFunc(entries, func(x, y Entry) int {
		if x.A.Index() != y.A.Index() {
			return x.A.Index() - y.A.Index()
		}
		return x.B.Index() - y.B.Index()
	})

	t := &Table{
		meta:    meta,
		entries: entries,
		keys:    make([]uint64, len(entries)),
	}
	for i, e := range entries {
		t.keys[i] = packKey(e.A, e.B)
		if i > 0 && t.keys[i] == t.keys[i-1] {
			// e.g. "AKs vs QQ" and "KAs vs QQ"
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformedTable, e.Key())
		}
	}
	if len(entries) == 0 {
		return t, nil
	}

	builder, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create index builder: %w", err)
	}
	for _, k := range t.keys {
		if err := builder.Add(k); err != nil {
			return nil, fmt.Errorf("failed to index key %d: %w", k, err)
		}
	}
	index, err := builder.Freeze(chdLoad)
	if err != nil {
		return nil, fmt.Errorf("failed to freeze index: %w", err)
	}

	for i, k := range t.keys {
		slot := int(index.Find(k))
		for len(t.slots) <= slot {
			t.slots = append(t.slots, -1)
		}
		if t.slots[slot] >= 0 {
			return nil, fmt.Errorf("index collision between %q and %q", entries[t.slots[slot]].Key(), entries[i].Key())
		}
		t.slots[slot] = int32(i)
	}
	t.index = index
	return t, nil
}

// find returns the entry stored under the ordered pair.
func (t *Table) find(a, b analysis.Notation) (Entry, bool) {
	if t == nil || t.index == nil {
		return Entry{}, false
	}
	key := packKey(a, b)
	slot := int(t.index.Find(key))
	if slot < 0 || slot >= len(t.slots) || t.slots[slot] < 0 {
		return Entry{}, false
	}
	i := t.slots[slot]
	// the perfect hash maps unknown keys to arbitrary slots
	if t.keys[i] != key {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Lookup returns the equity of hero against opp. The "<hero> vs <opp>" entry
// is tried first, then the mirrored entry reading the other side.
func (t *Table) Lookup(hero, opp analysis.Notation) (float64, bool) {
	if e, ok := t.find(hero, opp); ok {
		return e.EquityA, true
	}
	if e, ok := t.find(opp, hero); ok {
		return e.EquityB, true
	}
	return 0, false
}

// LookupKey returns both sides of a "<A> vs <B>" key, mirroring if needed.
func (t *Table) LookupKey(key string) ([2]float64, bool) {
	a, b, err := ParseKey(key)
	if err != nil {
		return [2]float64{}, false
	}
	if e, ok := t.find(a, b); ok {
		return [2]float64{e.EquityA, e.EquityB}, true
	}
	if e, ok := t.find(b, a); ok {
		return [2]float64{e.EquityB, e.EquityA}, true
	}
	return [2]float64{}, false
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Metadata returns how the table was produced.
func (t *Table) Metadata() Metadata {
	return t.meta
}

// Entries returns a copy of every entry in grid order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Missing lists unordered pairs of the given classes that have no entry in
// either key order.
func (t *Table) Missing(classes []analysis.Notation) []string {
	var missing []string
	for i, a := range classes {
		for _, b := range classes[i:] {
			if _, ok := t.Lookup(a, b); !ok {
				missing = append(missing, FormatKey(a, b))
			}
		}
	}
	return missing
}
