package models

import "fmt"

// Unit is the measure attached to an ingredient quantity.
type Unit string

const (
	UnitPiece      Unit = "piece"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMillilitre Unit = "ml"
	UnitCentilitre Unit = "cl"
	UnitLitre      Unit = "L"
)

// Units lists every supported unit in display order.
var Units = []Unit{UnitPiece, UnitGram, UnitKilogram, UnitMillilitre, UnitCentilitre, UnitLitre}

// ParseUnit converts a raw token into a Unit.
// An empty token is a piece; "pièce" is accepted for data written by older tools.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "pièce":
		return UnitPiece, nil
	}
	if u := Unit(s); u.Valid() {
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// OrDefault returns the unit, or UnitPiece when it is empty.
func (u Unit) OrDefault() Unit {
	if u == "" {
		return UnitPiece
	}
	return u
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}
