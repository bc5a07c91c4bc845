package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for dimensions.
//
//    type DimenT
//       = Auto
//       | Inherit
//       | Initial
//       | JustDimen dimen
//       | Percentage Percent
//       | Relative unit value
type DimenT struct {
	d        dimen.DU
	percent  percent.Percent
	relative float64
	flags    uint32
}

// Auto creates a dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsNone is true for the zero value, i.e. for unparsable dimensions.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsAuto is true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsRelative is true for percentages and font- or viewport-relative
// dimensions.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Unit returns the unit of a relative dimension ("%", "em", …), or "".
func (d DimenT) Unit() string {
	for unit, flag := range relativeUnits {
		if d.flags&relativeMask == flag {
			return unit
		}
	}
	if d.flags&relativeMask == dimenPercent {
		return "%"
	}
	return ""
}

// Relative returns the value of a relative dimension, in its unit.
func (d DimenT) Relative() float64 {
	return d.relative
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "none"
	case d.IsAbsolute():
		return fmt.Sprintf("%dsp", int64(d.d))
	case d.IsAuto():
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	}
	return strconv.FormatFloat(d.relative, 'f', -1, 64) + d.Unit()
}

// --- Matching --------------------------------------------------------------

// Match starts a match expression on a dimension:
//
//    var du dimen.DU
//    switch m := d.Match(); m {
//    case m.Just(&du):
//       …
//    case m.IsKind(style.Auto()):
//       …
//    }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is the subject of a match expression on a dimension.
type Matcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&kindMask != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts the value.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Conversion from properties --------------------------------------------

var absoluteUnits = map[string]float64{
	"pt": 1,
	"bp": 72.27 / 72, // TeX big points
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
}

// Dimen converts a property value to a dimension. Units pt, bp, px, pc, in,
// cm and mm are converted to fixed dimensions; percentages and relative
// units are kept relative. "0" is a valid dimension without a unit.
func (p Property) Dimen() (DimenT, error) {
	s := strings.TrimSpace(strings.ToLower(string(p)))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if i <= 0 {
		return DimenT{}, fmt.Errorf("not a dimension: %q", p)
	}
	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("not a dimension: %q: %w", p, err)
	}
	unit := s[i:]
	if unit == "%" {
		return Percentage(percent.FromInt(int(math.Round(x)))), nil
	}
	if f, ok := absoluteUnits[unit]; ok {
		return JustDimen(dimen.DU(math.Round(x * f * float64(dimen.PT)))), nil
	}
	if flag, ok := relativeUnits[unit]; ok {
		return DimenT{relative: x, flags: flag}, nil
	}
	tracer().Infof("unknown unit %q in dimension %q", unit, p)
	return DimenT{}, fmt.Errorf("unknown unit %q in dimension %q", unit, p)
}
