package equity

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/analysis"
)

func n(token string) analysis.Notation {
	return analysis.MustParseNotation(token)
}

func newTestTable(t *testing.T, raw map[string][2]float64) *Table {
	t.Helper()
	table, err := NewTable(Metadata{ID: "test", Samples: 100}, raw)
	require.NoError(t, err)
	return table
}

func TestTableLookup(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, map[string][2]float64{
		"AA vs KK":   {81.9, 18.1},
		"AKs vs QQ":  {46.2, 53.8},
		"72o vs 72o": {50, 50},
	})
	assert.Equal(t, 3, table.Len())

	eq, ok := table.Lookup(n("AA"), n("KK"))
	require.True(t, ok)
	assert.Equal(t, 81.9, eq)

	eq, ok = table.Lookup(n("KK"), n("AA"))
	require.True(t, ok, "mirror key must resolve")
	assert.Equal(t, 18.1, eq)

	eq, ok = table.Lookup(n("QQ"), n("AKs"))
	require.True(t, ok)
	assert.Equal(t, 53.8, eq)

	_, ok = table.Lookup(n("AA"), n("QQ"))
	assert.False(t, ok)
	_, ok = table.Lookup(n("AKo"), n("QQ"))
	assert.False(t, ok, "suitedness is part of the key")
}

func TestTableDirectKeyWins(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, map[string][2]float64{
		"AA vs KK": {80, 20},
		"KK vs AA": {19, 81},
	})
	eq, ok := table.Lookup(n("KK"), n("AA"))
	require.True(t, ok)
	assert.Equal(t, 19.0, eq)
}

func TestTableLookupKey(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, map[string][2]float64{"AA vs KK": {81.9, 18.1}})

	pct, ok := table.LookupKey("KK vs AA")
	require.True(t, ok)
	assert.Equal(t, [2]float64{18.1, 81.9}, pct)

	_, ok = table.LookupKey("garbage")
	assert.False(t, ok)
}

func TestNewTableErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]map[string][2]float64{
		"bad separator":   {"AA-KK": {50, 50}},
		"bad notation":    {"AA vs KX": {50, 50}},
		"out of range":    {"AA vs KK": {120, -20}},
		"duplicate order": {"AKs vs QQ": {46, 54}, "KAs vs QQ": {46, 54}},
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTable(Metadata{}, raw)
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestEmptyTable(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, nil)
	assert.Zero(t, table.Len())
	_, ok := table.Lookup(n("AA"), n("KK"))
	assert.False(t, ok)
}

func TestTableMissing(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, map[string][2]float64{
		"AA vs AA": {50, 50},
		"KK vs AA": {18, 82},
	})
	missing := table.Missing([]analysis.Notation{n("AA"), n("KK")})
	assert.Equal(t, []string{"KK vs KK"}, missing)
}

func TestEntriesGridOrder(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, map[string][2]float64{
		"22 vs AA":  {18, 82},
		"AKs vs QQ": {46, 54},
		"AA vs KK":  {82, 18},
	})
	var keys []string
	for _, e := range table.Entries() {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{"AA vs KK", "AKs vs QQ", "22 vs AA"}, keys)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()
	raw := map[string][2]float64{
		"AA vs KK":  {81.98, 18.02},
		"AKs vs QQ": {46.16, 53.84},
		"T9s vs 22": {47.5, 52.5},
	}
	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()
			table, err := NewTable(Metadata{ID: "abc", Samples: 500}, raw)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, table.Encode(&buf, format))

			decoded, err := Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, table.Metadata(), decoded.Metadata())
			assert.Equal(t, table.Entries(), decoded.Entries())
		})
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"empty":         "",
		"not json":      "{nope",
		"wrong version": `{"version":2,"entries":{}}`,
		"no entries":    `{"version":1}`,
		"bad key":       `{"version":1,"entries":{"AA v KK":[50,50]}}`,
		"three values":  `{"version":1,"entries":{"AA vs KK":[50,50,0]}}`,
		"over 100":      `{"version":1,"entries":{"AA vs KK":[101,-1]}}`,
		"extra field":   `{"version":1,"entries":{},"extra":true}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestLoadRejectsTruncatedMsgpack(t *testing.T) {
	t.Parallel()
	table := newTestTable(t, map[string][2]float64{"AA vs KK": {82, 18}})
	var buf bytes.Buffer
	require.NoError(t, table.Encode(&buf, FormatMsgpack))

	data := buf.Bytes()
	_, err := Load(bytes.NewReader(data[:len(data)-3]))
	assert.ErrorIs(t, err, ErrMalformedTable)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	table := newTestTable(t, map[string][2]float64{"AA vs KK": {82, 18}})

	for _, name := range []string{"table.json", "table.msgp"} {
		path := filepath.Join(dir, name)
		var buf bytes.Buffer
		require.NoError(t, table.Encode(&buf, FormatForPath(path)))
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

		loaded, err := LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, 1, loaded.Len())
	}

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, FormatMsgpack, FormatForPath("x/table.msgp"))
	assert.Equal(t, FormatMsgpack, FormatForPath("TABLE.MSGPACK"))
	assert.Equal(t, FormatJSON, FormatForPath("table.json"))
	assert.Equal(t, FormatJSON, FormatForPath("table"))
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()
	table, err := Default()
	require.NoError(t, err)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)

	assert.Equal(t, 14365, table.Len())
	assert.Empty(t, table.Missing(analysis.AllNotations()))

	eq, ok := table.Lookup(n("AA"), n("KK"))
	require.True(t, ok)
	assert.InDelta(t, 82, eq, 1.5)

	eq, ok = table.Lookup(n("KK"), n("AA"))
	require.True(t, ok)
	assert.InDelta(t, 18, eq, 1.5)

	for _, e := range table.Entries() {
		assert.InDelta(t, 100, e.EquityA+e.EquityB, 0.011, e.Key())
		if e.A == e.B {
			assert.Equal(t, 50.0, e.EquityA, e.Key())
		}
	}
}
