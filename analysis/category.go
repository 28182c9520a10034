package analysis

import "github.com/lox/pokertrainer/poker"

// Category is a coarse preflop strength bucket.
type Category string

const (
	CategoryPremium Category = "Premium"
	CategoryStrong  Category = "Strong"
	CategoryMedium  Category = "Medium"
	CategoryWeak    Category = "Weak"
	CategoryTrash   Category = "Trash"
)

// Category buckets the class: Premium (JJ+, AK), Strong (TT, AQ, AJ),
// Medium (77-99, suited broadway), Weak (22-66, suited cards within two
// ranks) and Trash for everything else.
func (n Notation) Category() Category {
	switch {
	case n.IsPair() && n.High >= poker.Jack:
		return CategoryPremium
	case n.High == poker.Ace && n.Low == poker.King:
		return CategoryPremium
	case n.IsPair() && n.High == poker.Ten:
		return CategoryStrong
	case n.High == poker.Ace && (n.Low == poker.Queen || n.Low == poker.Jack):
		return CategoryStrong
	case n.IsPair() && n.High >= poker.Seven:
		return CategoryMedium
	case n.IsSuited() && n.Low >= poker.Ten:
		return CategoryMedium
	case n.IsPair():
		return CategoryWeak
	case n.IsSuited() && n.High-n.Low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
