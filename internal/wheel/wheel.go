// Package wheel maps ecliptic longitudes onto the Human Design wheel: 64
// gates of 5.625° laid out in a fixed, non-sequential order around the
// zodiac, each gate divided into 6 lines, each line into 6 colors, each color
// into 6 tones, each tone into 5 bases. The 384 gate/line sub-intervals tile
// [0°, 360°) exactly, with no gaps and no overlaps.
package wheel

import (
	"fmt"
	"math"
)

// GateOrder is the fixed sequence of the 64 gates around the wheel, starting
// from StartDegree and proceeding in order of increasing longitude. It is
// opaque constant data, not derived.
var GateOrder = [64]int{
	41, 19, 13, 49, 30, 55, 37, 63,
	22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35,
	45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64,
	47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5,
	26, 11, 10, 58, 38, 54, 61, 60,
}

const (
	// StartDegree is the ecliptic longitude where gate 41 begins
	// (2°00' Aquarius).
	StartDegree = 302.0

	// GateSpan is the width of one gate: 360/64 = 5°37'30".
	GateSpan = 5.625

	// LineSpan is the width of one line: GateSpan/6 = 56'15".
	LineSpan = GateSpan / 6

	// ColorSpan is the width of one color: LineSpan/6.
	ColorSpan = LineSpan / 6

	// ToneSpan is the width of one tone: ColorSpan/6.
	ToneSpan = ColorSpan / 6

	// BaseSpan is the width of one base: ToneSpan/5.
	BaseSpan = ToneSpan / 5
)

// Position is the discrete wheel location of one ecliptic longitude.
type Position struct {
	Gate      int     `json:"gate"`
	Line      int     `json:"line"`
	Color     int     `json:"color"`
	Tone      int     `json:"tone"`
	Base      int     `json:"base"`
	Longitude float64 `json:"longitude"` // normalized input, [0, 360)
}

// Resolve maps an ecliptic longitude in degrees to its wheel position. The
// input is taken modulo 360 first, so Resolve is total over all finite
// longitudes; an exact gate boundary (k × 5.625° from StartDegree) resolves
// to line 1 of the gate that begins there.
func Resolve(longitude float64) Position {
	deg := normalize(longitude)

	offset := deg - StartDegree
	if offset < 0 {
		offset += 360.0
	}

	gateIdx := int(math.Floor(offset / GateSpan))
	if gateIdx > 63 {
		gateIdx = 63 // guards the offset==360 float edge
	}
	withinGate := offset - float64(gateIdx)*GateSpan

	lineIdx := subIndex(withinGate, LineSpan, 6)
	withinLine := withinGate - float64(lineIdx)*LineSpan

	colorIdx := subIndex(withinLine, ColorSpan, 6)
	withinColor := withinLine - float64(colorIdx)*ColorSpan

	toneIdx := subIndex(withinColor, ToneSpan, 6)
	withinTone := withinColor - float64(toneIdx)*ToneSpan

	baseIdx := subIndex(withinTone, BaseSpan, 5)

	return Position{
		Gate:      GateOrder[gateIdx],
		Line:      lineIdx + 1,
		Color:     colorIdx + 1,
		Tone:      toneIdx + 1,
		Base:      baseIdx + 1,
		Longitude: deg,
	}
}

// subIndex floors within/span and clamps to [0, count-1] so accumulated
// float error at the far edge of a span never escapes the interval.
func subIndex(within, span float64, count int) int {
	idx := int(math.Floor(within / span))
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}
	return idx
}

func normalize(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Validate checks that GateOrder is a permutation of 1..64. Called once at
// process start; a failure means the constant table itself is corrupt and no
// chart may be computed.
func Validate() error {
	seen := make(map[int]bool, 64)
	for _, g := range GateOrder {
		if g < 1 || g > 64 {
			return fmt.Errorf("wheel: gate %d out of range", g)
		}
		if seen[g] {
			return fmt.Errorf("wheel: gate %d listed twice", g)
		}
		seen[g] = true
	}
	if len(seen) != 64 {
		return fmt.Errorf("wheel: %d gates listed, want 64", len(seen))
	}
	return nil
}
