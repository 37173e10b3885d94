// Package ephemeris provides geocentric ecliptic longitudes for the thirteen
// celestial references tracked by a Human Design chart. The Provider interface
// is the contract the chart engine consumes; AnalyticProvider is the built-in
// implementation based on a compact analytic theory.
package ephemeris

// Body identifies one of the thirteen tracked celestial references.
type Body int

const (
	Sun Body = iota
	Earth
	Moon
	NorthNode
	SouthNode
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// bodyNames is indexed by Body.
var bodyNames = [...]string{
	"Sun", "Earth", "Moon", "North Node", "South Node",
	"Mercury", "Venus", "Mars", "Jupiter", "Saturn",
	"Uranus", "Neptune", "Pluto",
}

// bodySymbols is indexed by Body.
var bodySymbols = [...]string{
	"☉", "⊕", "☽", "☊", "☋",
	"☿", "♀", "♂", "♃", "♄",
	"♅", "♆", "♇",
}

// Bodies returns all tracked bodies in chart order (Sun first).
// The slice is freshly allocated; callers may reorder it.
func Bodies() []Body {
	return []Body{
		Sun, Earth, Moon, NorthNode, SouthNode,
		Mercury, Venus, Mars, Jupiter, Saturn,
		Uranus, Neptune, Pluto,
	}
}

// String returns the display name of the body.
func (b Body) String() string {
	if b < Sun || b > Pluto {
		return "unknown"
	}
	return bodyNames[b]
}

// Symbol returns the astronomical glyph for the body.
func (b Body) Symbol() string {
	if b < Sun || b > Pluto {
		return "?"
	}
	return bodySymbols[b]
}

// Key returns the lowercase snake_case identifier used in catalogs and
// serialized output.
func (b Body) Key() string {
	switch b {
	case Sun:
		return "sun"
	case Earth:
		return "earth"
	case Moon:
		return "moon"
	case NorthNode:
		return "north_node"
	case SouthNode:
		return "south_node"
	case Mercury:
		return "mercury"
	case Venus:
		return "venus"
	case Mars:
		return "mars"
	case Jupiter:
		return "jupiter"
	case Saturn:
		return "saturn"
	case Uranus:
		return "uranus"
	case Neptune:
		return "neptune"
	case Pluto:
		return "pluto"
	}
	return "unknown"
}
