// Package entities holds the shared domain records for the character
// assistant: attributes, races, classes, and finalized characters.
package entities

import "strings"

// Attribute is one of the six character attributes
type Attribute string

// The fixed attribute set, in canonical order
const (
	STR Attribute = "STR"
	DEX Attribute = "DEX"
	CON Attribute = "CON"
	INT Attribute = "INT"
	WIS Attribute = "WIS"
	CHA Attribute = "CHA"
)

// DefaultScore is the value read for an attribute absent from a ScoreSet
const DefaultScore = 10

var attributeOrder = []Attribute{STR, DEX, CON, INT, WIS, CHA}

var attributeNames = map[string]Attribute{
	"STR": STR, "STRENGTH": STR,
	"DEX": DEX, "DEXTERITY": DEX,
	"CON": CON, "CONSTITUTION": CON,
	"INT": INT, "INTELLIGENCE": INT,
	"WIS": WIS, "WISDOM": WIS,
	"CHA": CHA, "CHARISMA": CHA,
}

// Attributes returns the six attributes in canonical order.
// The returned slice is a copy and safe to modify.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributeOrder))
	copy(out, attributeOrder)
	return out
}

// ParseAttribute maps a full attribute name or three-letter code to its
// Attribute, case-insensitively. The second return value reports whether
// the name was recognized.
func ParseAttribute(name string) (Attribute, bool) {
	attr, ok := attributeNames[strings.ToUpper(strings.TrimSpace(name))]
	return attr, ok
}

// String returns the three-letter code
func (a Attribute) String() string {
	return string(a)
}

// ScoreSet maps attributes to values. Missing keys read as DefaultScore
// via Get; the default is applied at read time, never stored.
type ScoreSet map[Attribute]int

// Get returns the value for an attribute, or DefaultScore if absent
func (s ScoreSet) Get(attr Attribute) int {
	if v, ok := s[attr]; ok {
		return v
	}
	return DefaultScore
}

// Clone returns a copy of the score set
func (s ScoreSet) Clone() ScoreSet {
	if s == nil {
		return nil
	}
	out := make(ScoreSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
