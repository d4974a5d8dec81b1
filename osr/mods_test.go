package osr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMods(t *testing.T) {
	tests := []struct {
		name string
		mods uint32
		want []Mod
	}{
		{"none", 0, []Mod{}},
		{"first two bits", 3, []Mod{"NF", "EZ"}},
		{"hidden double time", 8 | 64, []Mod{"HD", "DT"}},
		{"ascending order", 1024 | 16 | 8, []Mod{"HD", "HR", "FL"}},
		{"nightcore keeps dt bit", 512 | 64, []Mod{"DT", "NC"}},
		{"unassigned bits skipped", 4 | 128, []Mod{}},
		{"above scanned range", 1 << 11, []Mod{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMods(tt.mods))
		})
	}
}

func TestModTable_Standard(t *testing.T) {
	got := StandardMods.Parse(4 | 128 | 1<<11 | 1<<14)
	assert.Equal(t, []Mod{"TD", "RX", "AT", "PF"}, got)
	assert.Zero(t, StandardMods.Unknown(0x7FFF))
}

func TestModTable_Strict(t *testing.T) {
	mods, err := ReferenceMods.ParseStrict(8 | 64)
	require.NoError(t, err)
	assert.Equal(t, []Mod{"HD", "DT"}, mods)

	_, err = ReferenceMods.ParseStrict(8 | 128)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownModifierBit)
	assert.Contains(t, err.Error(), "bit 7")

	assert.Equal(t, uint32(4|128), ReferenceMods.Unknown(0xFF))
}

func TestModTableByName(t *testing.T) {
	tbl, err := ModTableByName("")
	require.NoError(t, err)
	assert.Equal(t, "reference", tbl.Name)

	tbl, err = ModTableByName("Standard")
	require.NoError(t, err)
	assert.Equal(t, "standard", tbl.Name)

	_, err = ModTableByName("lazer")
	assert.Error(t, err)
}

func TestJoinMods(t *testing.T) {
	assert.Equal(t, "NM", JoinMods(nil))
	assert.Equal(t, "HDDT", JoinMods([]Mod{"HD", "DT"}))
}
