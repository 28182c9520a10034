package equity

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/pokertrainer/analysis"
)

// Option configures a Calculator
type Option func(*Calculator)

// WithLogger sets the logger used for lookup diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Calculator aggregates table equities into a hero's equity against a set
// of opponent combinations. It holds no mutable state and is safe for
// concurrent use.
type Calculator struct {
	table  *Table
	logger *log.Logger
}

// NewCalculator creates a calculator backed by table.
func NewCalculator(table *Table, opts ...Option) (*Calculator, error) {
	if table == nil {
		return nil, ErrTableNotLoaded
	}
	c := &Calculator{
		table:  table,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewDefaultCalculator creates a calculator backed by the embedded table.
func NewDefaultCalculator(opts ...Option) (*Calculator, error) {
	table, err := Default()
	if err != nil {
		return nil, err
	}
	return NewCalculator(table, opts...)
}

// Table returns the backing table.
func (c *Calculator) Table() *Table {
	return c.table
}

// ClassContribution is the share one opponent class has in an equity result.
type ClassContribution struct {
	Notation analysis.Notation
	// Count is the number of opponent combinations of the class left after
	// removing those that share a card with the hero.
	Count  int
	Weight int
	// Equity is the hero's equity against the class in percent. It is only
	// meaningful when Found is set.
	Equity float64
	Found  bool
}

// Breakdown returns the per-class contributions for hero against opponents,
// in the order each class first appears in opponents. Classes with no table
// entry are reported with Found unset and logged.
func (c *Calculator) Breakdown(hero analysis.Combination, opponents []analysis.Combination) []ClassContribution {
	heroClass := hero.Notation()

	var counts [analysis.NotationCount]int
	var order []analysis.Notation
	for _, opp := range opponents {
		if opp.Overlaps(hero) {
			continue
		}
		n := opp.Notation()
		if counts[n.Index()] == 0 {
			order = append(order, n)
		}
		counts[n.Index()]++
	}

	parts := make([]ClassContribution, 0, len(order))
	for _, n := range order {
		count := counts[n.Index()]
		eq, ok := c.table.Lookup(heroClass, n)
		if !ok {
			c.logger.Warn("No equity table entry, skipping class", "hero", heroClass, "opponent", n)
		}
		parts = append(parts, ClassContribution{
			Notation: n,
			Count:    count,
			Weight:   Weight(heroClass, n, count),
			Equity:   eq,
			Found:    ok,
		})
	}
	return parts
}

// Equity returns the weighted equity of hero against opponents in percent.
// It reports false when no opponent combination survives card removal or
// when no surviving class has a table entry.
func (c *Calculator) Equity(hero analysis.Combination, opponents []analysis.Combination) (float64, bool) {
	return Aggregate(c.Breakdown(hero, opponents))
}

// Aggregate computes the weighted mean equity of the found contributions.
func Aggregate(parts []ClassContribution) (float64, bool) {
	var sum, weights float64
	for _, p := range parts {
		if !p.Found {
			continue
		}
		sum += float64(p.Weight) * p.Equity
		weights += float64(p.Weight)
	}
	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}
