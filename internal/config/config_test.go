package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/equity"
	"github.com/lox/pokertrainer/poker"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	c, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, 20000, c.Generator.Samples)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFile)
	src := `
log_level  = "debug"
log_format = "json"
table_path = "tables/custom.msgp"
no_color   = true

generator {
  samples = 500
  seed    = 99
  workers = 3
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "tables/custom.msgp", c.TablePath)
	assert.True(t, c.NoColor)
	assert.Equal(t, &GeneratorConfig{Samples: 500, Seed: 99, Workers: 3, Output: "headsup.json"}, c.Generator)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     string
		invalid bool
	}{
		{name: "syntax", src: `log_level = `},
		{name: "unknown attribute", src: `colour = true`},
		{name: "bad level", src: `log_level = "loud"`, invalid: true},
		{name: "bad format", src: `log_format = "xml"`, invalid: true},
		{name: "negative samples", src: "generator {\n  samples = -1\n}", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

const scenarioSrc = `
hole  = ["Ahearts", "Kspades"]
board = ["Qhearts", "Jhearts", "2clubs"]

seat "hero" {
  hero = true
  bet  = 2
}

seat "button" {
  action = "call"
  bet    = 2
  range  = "22-55"
}

seat "villain" {
  action = "raise"
  bet    = 6
  range  = "TT+,AQs+"
}
`

func TestParseScenario(t *testing.T) {
	t.Parallel()
	s, err := ParseScenario([]byte(scenarioSrc), "spot.hcl")
	require.NoError(t, err)

	hole, board, err := s.Cards()
	require.NoError(t, err)
	assert.Equal(t, poker.MustParseCards("Ahearts", "Kspades"), hole)
	assert.Len(t, board, 3)

	seats, err := s.TableSeats()
	require.NoError(t, err)
	require.Len(t, seats, 3)
	assert.True(t, seats[0].Hero)
	assert.Equal(t, equity.ActionNone, seats[0].Action)
	assert.Empty(t, seats[0].Range)
	assert.Equal(t, []string{"22", "33", "44", "55"}, seats[1].Range)
	assert.Equal(t, equity.Seat{
		Name:   "villain",
		Range:  []string{"TT", "JJ", "QQ", "KK", "AA", "AQs", "AKs"},
		Action: equity.ActionRaise,
		Bet:    6,
	}, seats[2])

	opp, ok := equity.SelectOpponent(seats)
	require.True(t, ok)
	assert.Equal(t, "villain", opp.Name)
}

func TestParseScenarioErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"bad card":   `hole = ["Axx", "Kspades"]`,
		"bad action": "seat \"a\" {\n  action = \"limp\"\n}",
		"bad range":  "seat \"a\" {\n  range = \"AKx\"\n}",
		"negative":   "seat \"a\" {\n  bet = -1\n}",
		"two heroes": "seat \"a\" {\n  hero = true\n}\nseat \"b\" {\n  hero = true\n}",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseScenario([]byte(src), "bad.hcl")
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	t.Parallel()
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
