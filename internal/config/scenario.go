package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/pokertrainer/analysis"
	"github.com/lox/pokertrainer/equity"
	"github.com/lox/pokertrainer/poker"
)

// ErrInvalidScenario is returned when a scenario cannot be converted.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario describes a table state to resolve hero equity for
type Scenario struct {
	Hole  []string     `hcl:"hole,optional"`
	Board []string     `hcl:"board,optional"`
	Seats []SeatConfig `hcl:"seat,block"`
}

// SeatConfig is one seated player
type SeatConfig struct {
	Name   string  `hcl:"name,label"`
	Hero   bool    `hcl:"hero,optional"`
	Action string  `hcl:"action,optional"`
	Bet    float64 `hcl:"bet,optional"`
	// Range uses shorthand such as "TT+,AQs+,KQo".
	Range string `hcl:"range,optional"`
}

// LoadScenario reads a scenario file
func LoadScenario(filename string) (*Scenario, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(src, filename)
}

// ParseScenario decodes a scenario from HCL source and checks that it can
// be converted.
func ParseScenario(src []byte, filename string) (*Scenario, error) {
	var s Scenario
	if err := decode(src, filename, &s); err != nil {
		return nil, err
	}
	if _, _, err := s.Cards(); err != nil {
		return nil, err
	}
	if _, err := s.TableSeats(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Cards parses the hole and board cards.
func (s *Scenario) Cards() (hole, board []poker.Card, err error) {
	if hole, err = poker.ParseCards(s.Hole); err != nil {
		return nil, nil, fmt.Errorf("%w: hole: %w", ErrInvalidScenario, err)
	}
	if board, err = poker.ParseCards(s.Board); err != nil {
		return nil, nil, fmt.Errorf("%w: board: %w", ErrInvalidScenario, err)
	}
	return hole, board, nil
}

// TableSeats converts the seat blocks for the resolver.
func (s *Scenario) TableSeats() ([]equity.Seat, error) {
	seats := make([]equity.Seat, 0, len(s.Seats))
	heroes := 0
	for _, sc := range s.Seats {
		action, err := equity.ParseAction(sc.Action)
		if err != nil {
			return nil, fmt.Errorf("%w: seat %s: %w", ErrInvalidScenario, sc.Name, err)
		}
		r, err := analysis.ParseRange(sc.Range)
		if err != nil {
			return nil, fmt.Errorf("%w: seat %s: %w", ErrInvalidScenario, sc.Name, err)
		}
		if sc.Bet < 0 {
			return nil, fmt.Errorf("%w: seat %s: negative bet", ErrInvalidScenario, sc.Name)
		}
		if sc.Hero {
			heroes++
		}
		seats = append(seats, equity.Seat{
			Name:   sc.Name,
			Range:  r.Tokens(),
			Action: action,
			Bet:    sc.Bet,
			Hero:   sc.Hero,
		})
	}
	if heroes > 1 {
		return nil, fmt.Errorf("%w: %d seats marked hero", ErrInvalidScenario, heroes)
	}
	return seats, nil
}
