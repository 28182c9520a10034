package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokertrainer/poker"
)

// EvalCmd evaluates a set of cards.
type EvalCmd struct {
	Cards []string `arg:"" help:"Five to seven cards, e.g. Ahearts Khearts Qh Jh Th"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	cards, err := parseCardArgs(cmd.Cards)
	if err != nil {
		return err
	}
	hand, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}
	printHand(g, hand)
	return nil
}

// BestCmd picks the best hand from hole and board cards.
type BestCmd struct {
	Hole  []string `required:"" help:"Hole cards, comma separated"`
	Board []string `required:"" help:"Board cards, comma separated"`
}

func (cmd *BestCmd) Run(g *Globals) error {
	hole, err := parseCardArgs(cmd.Hole)
	if err != nil {
		return err
	}
	board, err := parseCardArgs(cmd.Board)
	if err != nil {
		return err
	}
	hand, err := poker.FindBestHand(hole, board)
	if err != nil {
		return err
	}
	printHand(g, hand)
	return nil
}

func printHand(g *Globals, hand poker.HandEvaluation) {
	header(g.Out, "%s", hand.Tier)
	fmt.Fprintf(g.Out, "%s\n", hand.Label)
	fmt.Fprintf(g.Out, "Cards:   %s\n", prettyCards(hand.Cards[:]))
	kickers := make([]string, len(hand.Kickers))
	for i, k := range hand.Kickers {
		kickers[i] = k.String()
	}
	fmt.Fprintf(g.Out, "Kickers: %s\n", dimStyle.Render(strings.Join(kickers, " ")))
}
