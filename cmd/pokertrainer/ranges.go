package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokertrainer/analysis"
	"github.com/lox/pokertrainer/poker"
)

// ExpandCmd lists the combinations of a range.
type ExpandCmd struct {
	Range  []string `arg:"" help:"Hand classes or shorthand such as TT+, AQs+ or A5s-A2s"`
	Combos bool     `help:"List every combination"`
}

func (cmd *ExpandCmd) Run(g *Globals) error {
	r, err := analysis.ParseRange(strings.Join(cmd.Range, ","))
	if err != nil {
		return err
	}
	combos := analysis.ExpandMany(r.Tokens())

	header(g.Out, "%d classes, %d combinations (%.1f%% of hands)", r.Len(), len(combos), float64(len(combos))*100/1326)
	tw := newTable(g.Out)
	fmt.Fprintln(tw, "CLASS\tCOMBOS\tCATEGORY")
	for _, n := range r.Notations() {
		if cmd.Combos {
			var listed []string
			for _, c := range n.Combinations() {
				listed = append(listed, c.First.Short()+c.Second.Short())
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", n, n.Combos(), n.Category(), strings.Join(listed, " "))
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", n, n.Combos(), n.Category())
	}
	return tw.Flush()
}

// FilterCmd applies card removal to a range.
type FilterCmd struct {
	Range    string   `arg:"" help:"Range shorthand, e.g. 'TT+,AKs'"`
	Blockers []string `arg:"" optional:"" help:"Known cards such as Ahearts or Ah"`
}

func (cmd *FilterCmd) Run(g *Globals) error {
	r, err := analysis.ParseRange(cmd.Range)
	if err != nil {
		return err
	}
	blockers, err := parseCardArgs(cmd.Blockers)
	if err != nil {
		return err
	}

	before := r.Combinations()
	after := analysis.Filter(before, blockers)
	remaining := make(map[analysis.Notation]int)
	for _, c := range after {
		remaining[c.Notation()]++
	}

	header(g.Out, "%d of %d combinations remain after %s", len(after), len(before), blockerList(blockers))
	tw := newTable(g.Out)
	fmt.Fprintln(tw, "CLASS\tBEFORE\tAFTER")
	for _, n := range r.Notations() {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", n, n.Combos(), remaining[n])
	}
	return tw.Flush()
}

func blockerList(cards []poker.Card) string {
	if len(cards) == 0 {
		return dimStyle.Render("no blockers")
	}
	return prettyCards(cards)
}
