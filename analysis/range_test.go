package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/poker"
)

func TestParseNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    string
		kind    Kind
		wantErr bool
	}{
		{input: "AA", want: "AA", kind: Pair},
		{input: "AKs", want: "AKs", kind: Suited},
		{input: "KAs", want: "AKs", kind: Suited},
		{input: "27o", want: "72o", kind: Offsuit},
		{input: "tjS", want: "JTs", kind: Suited},
		{input: "AK", wantErr: true},
		{input: "AAo", wantErr: true},
		{input: "AKx", wantErr: true},
		{input: "1A", wantErr: true},
		{input: "A", wantErr: true},
		{input: "AKsx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			n, err := ParseNotation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.kind, n.Kind)
			assert.GreaterOrEqual(t, n.High, n.Low)
		})
	}
}

func TestAllNotations(t *testing.T) {
	t.Parallel()
	all := AllNotations()
	require.Len(t, all, NotationCount)

	seen := map[string]bool{}
	counts := map[Kind]int{}
	for i, n := range all {
		assert.Equal(t, i, n.Index())
		assert.Equal(t, n, NotationAt(i))
		assert.False(t, seen[n.String()], "duplicate %s", n)
		seen[n.String()] = true
		counts[n.Kind]++
	}
	assert.Equal(t, 13, counts[Pair])
	assert.Equal(t, 78, counts[Suited])
	assert.Equal(t, 78, counts[Offsuit])

	assert.Equal(t, "AA", all[0].String())
	assert.Equal(t, "AKs", all[1].String())
	assert.Equal(t, "AKo", all[13].String())
	assert.Equal(t, "22", all[168].String())
}

func TestSharedRanks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want int
	}{
		{"AA", "AA", 1},
		{"AA", "AKs", 1},
		{"AKo", "AA", 1},
		{"AKo", "AKs", 2},
		{"AKo", "AQo", 1},
		{"AKo", "QJs", 0},
		{"KK", "QQ", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParseNotation(tt.a).SharedRanks(MustParseNotation(tt.b)), "%s vs %s", tt.a, tt.b)
	}
}

func TestParseRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		wantLen  int
		wantSize int
		wantErr  bool
	}{
		{name: "pocket aces", notation: "AA", wantLen: 1, wantSize: 6},
		{name: "ace king any", notation: "AK", wantLen: 2, wantSize: 16},
		{name: "multiple hands", notation: "AA,KK,AKs", wantLen: 3, wantSize: 16},
		{name: "duplicates collapse", notation: "AA, AA ,KK", wantLen: 2, wantSize: 12},
		{name: "pocket pairs plus", notation: "TT+", wantLen: 5, wantSize: 30},
		{name: "suited plus", notation: "ATs+", wantLen: 4, wantSize: 16},
		{name: "offsuit plus", notation: "KJo+", wantLen: 2, wantSize: 24},
		{name: "any plus", notation: "KQ+", wantLen: 2, wantSize: 16},
		{name: "dash pairs", notation: "22-55", wantLen: 4, wantSize: 24},
		{name: "dash pairs reversed", notation: "55-22", wantLen: 4, wantSize: 24},
		{name: "dash suited", notation: "A5s-A2s", wantLen: 4, wantSize: 16},
		{name: "dash offsuit", notation: "K9o-K6o", wantLen: 4, wantSize: 48},
		{name: "complex", notation: "TT+,AJs+,KQs", wantLen: 9, wantSize: 46},
		{name: "empty", notation: "", wantLen: 0, wantSize: 0},
		{name: "invalid ranks", notation: "XX", wantErr: true},
		{name: "invalid modifier", notation: "AKx", wantErr: true},
		{name: "pair with modifier", notation: "AAs", wantErr: true},
		{name: "mixed dash", notation: "A5s-K2s", wantErr: true},
		{name: "pair to unpaired dash", notation: "22-A2s", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := ParseRange(tt.notation)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, r.Len())
			assert.Equal(t, tt.wantSize, r.Size())
			assert.Len(t, r.Combinations(), tt.wantSize)
		})
	}
}

func TestRangeOrderAndContains(t *testing.T) {
	t.Parallel()
	r, err := NewRange("KK", "AKs", "KK", "27o")
	require.NoError(t, err)
	assert.Equal(t, []string{"KK", "AKs", "72o"}, r.Tokens())
	assert.Equal(t, "KK,AKs,72o", r.String())
	assert.True(t, r.Contains(MustParseNotation("AKs")))
	assert.False(t, r.Contains(MustParseNotation("AKo")))

	cards := poker.MustParseCards("Kclubs", "Kspades")
	assert.True(t, r.ContainsCombo(NewCombination(cards[0], cards[1])))

	_, err = NewRange("AA", "nope")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestFullRange(t *testing.T) {
	t.Parallel()
	r := FullRange()
	assert.Equal(t, NotationCount, r.Len())
	assert.Equal(t, 1326, r.Size())
}
