package main

import (
	"fmt"

	"github.com/lox/pokertrainer/analysis"
	"github.com/lox/pokertrainer/equity"
	"github.com/lox/pokertrainer/internal/config"
	"github.com/lox/pokertrainer/poker"
)

// EquityCmd computes hero equity against a single range.
type EquityCmd struct {
	Hero      []string `arg:"" help:"Hero hole cards, e.g. Ahearts Kspades"`
	Range     string   `short:"r" help:"Opponent range shorthand (every hand when empty)"`
	Board     []string `short:"b" help:"Board cards, used as blockers"`
	Breakdown bool     `help:"Show the contribution of each opponent class"`
}

func (cmd *EquityCmd) Run(g *Globals) error {
	hole, err := parseCardArgs(cmd.Hero)
	if err != nil {
		return err
	}
	board, err := parseCardArgs(cmd.Board)
	if err != nil {
		return err
	}
	r, err := analysis.ParseRange(cmd.Range)
	if err != nil {
		return err
	}
	calc, err := g.calculator()
	if err != nil {
		return err
	}

	// an empty range leaves the opponent without a range, which resolves to
	// every hand
	seats := []equity.Seat{{Name: "villain", Range: r.Tokens(), Action: equity.ActionBet, Bet: 1}}
	eq, ok, err := calc.HeroEquity(hole, board, seats)
	if err != nil {
		return err
	}
	printEquity(g, hole, equity.OpponentRange(seats), eq, ok)

	if cmd.Breakdown && ok {
		hero := analysis.NewCombination(hole[0], hole[1])
		known := append(append([]poker.Card{}, hole...), board...)
		opponents := analysis.Filter(analysis.ExpandMany(equity.OpponentRange(seats)), known)
		printBreakdown(g, calc.Breakdown(hero, opponents))
	}
	return nil
}

// ResolveCmd resolves hero equity for a scenario file.
type ResolveCmd struct {
	Scenario string `arg:"" type:"existingfile" help:"Scenario HCL file with hole, board and seat blocks"`
}

func (cmd *ResolveCmd) Run(g *Globals) error {
	scenario, err := config.LoadScenario(cmd.Scenario)
	if err != nil {
		return err
	}
	hole, board, err := scenario.Cards()
	if err != nil {
		return err
	}
	seats, err := scenario.TableSeats()
	if err != nil {
		return err
	}
	calc, err := g.calculator()
	if err != nil {
		return err
	}

	if opp, ok := equity.SelectOpponent(seats); ok {
		fmt.Fprintf(g.Out, "Opponent: %s (%s %.2f)\n", handStyle.Render(opp.Name), opp.Action, opp.Bet)
	} else {
		fmt.Fprintf(g.Out, "Opponent: %s\n", dimStyle.Render("none, assuming any two cards"))
	}
	eq, ok, err := calc.HeroEquity(hole, board, seats)
	if err != nil {
		return err
	}
	printEquity(g, hole, equity.OpponentRange(seats), eq, ok)
	return nil
}

func printEquity(g *Globals, hole []poker.Card, opponent []string, eq float64, ok bool) {
	fmt.Fprintf(g.Out, "Hero:     %s\n", prettyCards(hole))
	fmt.Fprintf(g.Out, "Range:    %d classes\n", len(opponent))
	if !ok {
		fmt.Fprintf(g.Out, "Equity:   %s\n", dimStyle.Render("n/a"))
		return
	}
	fmt.Fprintf(g.Out, "Equity:   %s\n", percent(eq))
}

func printBreakdown(g *Globals, parts []equity.ClassContribution) {
	tw := newTable(g.Out)
	fmt.Fprintln(tw, "CLASS\tCOMBOS\tWEIGHT\tEQUITY")
	for _, p := range parts {
		eq := "missing"
		if p.Found {
			eq = fmt.Sprintf("%.2f", p.Equity)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", p.Notation, p.Count, p.Weight, eq)
	}
	tw.Flush()
}
