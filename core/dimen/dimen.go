/*
Package dimen implements dimensions and units.

Math layout measures boxes in em, relative to the current font size.
Explicit dimensions in formulas may be given in TeX units (pt, mm, bp, ...),
in font-relative units (em, ex) or in math units (mu, 1/18 of a quad).
Package dimen holds the unit conversion tables; conversion of font-relative
units needs font parameters and is done by the style options of the engine.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimen is a dimension type for absolute dimensions.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// FromEm converts a length in em to an absolute dimension, given the
// size of the font in printer's points.
func FromEm(em float64, ptSize float64) Dimen {
	return Dimen(math.Round(em * ptSize * float64(PT)))
}

// ---------------------------------------------------------------------------

// Unit is a TeX unit of measurement.
type Unit string

// Units known to the math engine.
const (
	UnitPT Unit = "pt" // printer's point
	UnitMM Unit = "mm"
	UnitCM Unit = "cm"
	UnitIN Unit = "in"
	UnitBP Unit = "bp" // big point
	UnitPC Unit = "pc" // pica
	UnitDD Unit = "dd" // didot point
	UnitCC Unit = "cc" // cicero
	UnitND Unit = "nd" // new didot
	UnitNC Unit = "nc" // new cicero
	UnitSP Unit = "sp" // scaled point
	UnitPX Unit = "px"
	UnitEM Unit = "em" // quad of the current font
	UnitEX Unit = "ex" // x-height of the current font
	UnitMU Unit = "mu" // math unit, 1/18 em of the math font
)

// ptPerUnit holds the conversion factors of absolute units to TeX points.
var ptPerUnit = map[Unit]float64{
	UnitPT: 1,
	UnitMM: 7227.0 / 2540,
	UnitCM: 7227.0 / 254,
	UnitIN: 72.27,
	UnitBP: 803.0 / 800,
	UnitPC: 12,
	UnitDD: 1238.0 / 1157,
	UnitCC: 14856.0 / 1157,
	UnitND: 685.0 / 642,
	UnitNC: 1370.0 / 107,
	UnitSP: 1.0 / 65536,
	UnitPX: 803.0 / 800,
}

// PtPerUnit returns the number of TeX points in one unit u.
// For font-relative units it returns false.
func PtPerUnit(u Unit) (float64, bool) {
	f, ok := ptPerUnit[u]
	return f, ok
}

// IsAbsolute is true for units independent of the current font.
func (u Unit) IsAbsolute() bool {
	_, ok := ptPerUnit[u]
	return ok
}

// IsValid is true for all units known to the math engine.
func (u Unit) IsValid() bool {
	return u.IsAbsolute() || u == UnitEM || u == UnitEX || u == UnitMU
}

// Measurement is a number together with a unit, e.g. "3mu".
type Measurement struct {
	Number float64
	Unit   Unit
}

// Mu creates a measurement in math units.
func Mu(n float64) Measurement {
	return Measurement{Number: n, Unit: UnitMU}
}

// Em creates a measurement in em.
func Em(n float64) Measurement {
	return Measurement{Number: n, Unit: UnitEM}
}

func (m Measurement) String() string {
	return strconv.FormatFloat(m.Number, 'f', -1, 64) + string(m.Unit)
}

// Dimen converts an absolute measurement to a Dimen.
// Font-relative measurements produce an error.
func (m Measurement) Dimen() (Dimen, error) {
	f, ok := ptPerUnit[m.Unit]
	if !ok {
		return Zero, fmt.Errorf("cannot convert font-relative unit %q to absolute dimension", m.Unit)
	}
	return Dimen(math.Round(m.Number * f * float64(PT))), nil
}

var measurementPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))\s*([a-zA-Z]{2})$`)

// ParseMeasurement parses a string to return a measurement, e.g. "-1.5mu" or "3 pt".
func ParseMeasurement(s string) (Measurement, error) {
	d := measurementPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 3 {
		return Measurement{}, errors.New("format error parsing measurement")
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return Measurement{}, errors.New("format error parsing measurement")
	}
	u := Unit(strings.ToLower(d[2]))
	if !u.IsValid() {
		return Measurement{}, fmt.Errorf("invalid unit %q", d[2])
	}
	return Measurement{Number: n, Unit: u}, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
