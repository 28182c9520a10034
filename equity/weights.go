package equity

import "github.com/lox/pokertrainer/analysis"

type weightKey struct {
	shared    int
	hero, opp analysis.Kind
}

// overlapWeights is the card-removal weighting for opponent classes that
// share ranks with the hero class. Pairings absent from the table use the
// raw combination count.
var overlapWeights = map[weightKey]int{
	// hero pair against an unpaired class holding its rank
	{1, analysis.Pair, analysis.Suited}:  2,
	{1, analysis.Pair, analysis.Offsuit}: 6,

	// unpaired hero against a pair of one of its ranks
	{1, analysis.Offsuit, analysis.Pair}: 3,
	{1, analysis.Suited, analysis.Pair}:  3,

	// both ranks shared, suitedness differs
	{2, analysis.Offsuit, analysis.Suited}: 2,
	{2, analysis.Suited, analysis.Offsuit}: 6,
	// unreachable: same class, weighted 1
	{2, analysis.Offsuit, analysis.Offsuit}: 7,

	// one rank shared
	{1, analysis.Offsuit, analysis.Offsuit}: 9,
	{1, analysis.Offsuit, analysis.Suited}:  3,
	{1, analysis.Suited, analysis.Offsuit}:  6,
	{1, analysis.Suited, analysis.Suited}:   2,
}

// Weight returns the weight of opponent class opp against hero class hero.
// raw is the number of opponent combinations of that class that survived
// card removal.
func Weight(hero, opp analysis.Notation, raw int) int {
	if hero == opp {
		return 1
	}
	shared := hero.SharedRanks(opp)
	if shared == 0 {
		return raw
	}
	if w, ok := overlapWeights[weightKey{shared: shared, hero: hero.Kind, opp: opp.Kind}]; ok {
		return w
	}
	return raw
}
