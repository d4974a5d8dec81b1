package osr

import (
	"fmt"
	"strings"
)

// Mod is a short modifier code such as "HD" or "DT".
type Mod string

// ModBit assigns a code to one bit position of the mods bitmask.
type ModBit struct {
	Bit  uint
	Code Mod
}

// ModTable maps mods bits to codes. Entries are sorted by bit and Span bits
// (0..Span-1) are scanned; set bits with no entry are unknown.
type ModTable struct {
	Name    string
	Span    uint
	Entries []ModBit
}

// ReferenceMods is the mapping used by the replay-card tool. Bits 2
// (touch device) and 7 (relax) have no code, and nothing above bit 10 is read.
var ReferenceMods = ModTable{
	Name: "reference",
	Span: 11,
	Entries: []ModBit{
		{0, "NF"},
		{1, "EZ"},
		{3, "HD"},
		{4, "HR"},
		{5, "SD"},
		{6, "DT"},
		{8, "HT"},
		{9, "NC"},
		{10, "FL"},
	},
}

// StandardMods follows the game's own bit layout up to Perfect.
var StandardMods = ModTable{
	Name: "standard",
	Span: 15,
	Entries: []ModBit{
		{0, "NF"},
		{1, "EZ"},
		{2, "TD"},
		{3, "HD"},
		{4, "HR"},
		{5, "SD"},
		{6, "DT"},
		{7, "RX"},
		{8, "HT"},
		{9, "NC"},
		{10, "FL"},
		{11, "AT"},
		{12, "SO"},
		{13, "AP"},
		{14, "PF"},
	},
}

// ModTableByName returns ReferenceMods or StandardMods.
func ModTableByName(name string) (ModTable, error) {
	switch strings.ToLower(name) {
	case "", ReferenceMods.Name:
		return ReferenceMods, nil
	case StandardMods.Name:
		return StandardMods, nil
	}
	return ModTable{}, fmt.Errorf("osr: unknown mod table %q", name)
}

func (t ModTable) lookup(bit uint) (Mod, bool) {
	for _, e := range t.Entries {
		if e.Bit == bit {
			return e.Code, true
		}
	}
	return "", false
}

// Parse returns the codes for the set bits in ascending bit order. Set bits
// without an entry are skipped.
func (t ModTable) Parse(mods uint32) []Mod {
	out := make([]Mod, 0, len(t.Entries))
	for bit := uint(0); bit < t.Span; bit++ {
		if mods&(1<<bit) == 0 {
			continue
		}
		if code, ok := t.lookup(bit); ok {
			out = append(out, code)
		}
	}
	return out
}

// ParseStrict is like Parse but fails on the first scanned set bit that has
// no entry.
func (t ModTable) ParseStrict(mods uint32) ([]Mod, error) {
	if unk := t.Unknown(mods); unk != 0 {
		for bit := uint(0); bit < t.Span; bit++ {
			if unk&(1<<bit) != 0 {
				return nil, fmt.Errorf("%w: bit %d (0x%x) in %s table", ErrUnknownModifierBit, bit, uint32(1)<<bit, t.Name)
			}
		}
	}
	return t.Parse(mods), nil
}

// Unknown returns the scanned set bits that have no entry.
func (t ModTable) Unknown(mods uint32) uint32 {
	var unk uint32
	for bit := uint(0); bit < t.Span; bit++ {
		if mods&(1<<bit) == 0 {
			continue
		}
		if _, ok := t.lookup(bit); !ok {
			unk |= 1 << bit
		}
	}
	return unk
}

// ParseMods decodes mods with ReferenceMods.
func ParseMods(mods uint32) []Mod {
	return ReferenceMods.Parse(mods)
}

// JoinMods concatenates codes, e.g. "HDDT"; "NM" when there are none.
func JoinMods(mods []Mod) string {
	if len(mods) == 0 {
		return "NM"
	}
	var sb strings.Builder
	for _, m := range mods {
		sb.WriteString(string(m))
	}
	return sb.String()
}
