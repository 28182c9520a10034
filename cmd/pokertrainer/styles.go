package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokertrainer/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func header(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(format, args...)))
}

func percent(eq float64) string {
	s := fmt.Sprintf("%.2f%%", eq)
	if eq >= 50 {
		return goodStyle.Render(s)
	}
	return badStyle.Render(s)
}

func prettyCards(cards []poker.Card) string {
	return handStyle.Render(poker.FormatCards(cards, poker.Card.Pretty))
}

// parseCardArgs accepts cards as separate arguments or comma separated.
func parseCardArgs(args []string) ([]poker.Card, error) {
	var tokens []string
	for _, arg := range args {
		for tok := range strings.FieldsFuncSeq(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			tokens = append(tokens, tok)
		}
	}
	return poker.ParseCards(tokens)
}
