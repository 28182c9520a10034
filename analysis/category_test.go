package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotationCategory(t *testing.T) {
	t.Parallel()
	tests := map[string]Category{
		"AA":  CategoryPremium,
		"JJ":  CategoryPremium,
		"AKs": CategoryPremium,
		"AKo": CategoryPremium,
		"TT":  CategoryStrong,
		"AQs": CategoryStrong,
		"AJo": CategoryStrong,
		"99":  CategoryMedium,
		"77":  CategoryMedium,
		"KQs": CategoryMedium,
		"QJs": CategoryMedium,
		"66":  CategoryWeak,
		"22":  CategoryWeak,
		"76s": CategoryWeak,
		"53s": CategoryWeak,
		"KQo": CategoryTrash,
		"72o": CategoryTrash,
		"J4o": CategoryTrash,
		"74s": CategoryTrash,
	}
	for token, want := range tests {
		t.Run(token, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, MustParseNotation(token).Category())
		})
	}
}

func TestCategoryCoversGrid(t *testing.T) {
	t.Parallel()
	counts := make(map[Category]int)
	for _, n := range AllNotations() {
		counts[n.Category()]++
	}
	// JJ-AA plus AKs and AKo
	assert.Equal(t, 6, counts[CategoryPremium])
	assert.Equal(t, NotationCount, counts[CategoryPremium]+counts[CategoryStrong]+
		counts[CategoryMedium]+counts[CategoryWeak]+counts[CategoryTrash])
}
