// Package bodygraph holds the structural constant data of the Human Design
// bodygraph — the nine centers, the gate-to-center map, and the 36 channels —
// and derives active channels and defined centers from a set of activated
// gates.
package bodygraph

// Center is one of the nine structural nodes of the bodygraph.
type Center int

const (
	Head Center = iota
	Ajna
	Throat
	G
	Heart
	Sacral
	SolarPlexus
	Spleen
	Root
)

var centerNames = [...]string{
	"Head", "Ajna", "Throat", "G", "Heart",
	"Sacral", "Solar Plexus", "Spleen", "Root",
}

var centerKeys = [...]string{
	"head", "ajna", "throat", "g", "heart",
	"sacral", "solar_plexus", "spleen", "root",
}

// Centers returns all nine centers in top-to-bottom bodygraph order.
func Centers() []Center {
	return []Center{Head, Ajna, Throat, G, Heart, Sacral, SolarPlexus, Spleen, Root}
}

// String returns the display name of the center.
func (c Center) String() string {
	if c < Head || c > Root {
		return "unknown"
	}
	return centerNames[c]
}

// Key returns the lowercase snake_case identifier used in catalogs and
// serialized output.
func (c Center) Key() string {
	if c < Head || c > Root {
		return "unknown"
	}
	return centerKeys[c]
}

// IsMotor reports whether the center is one of the four motors (Sacral,
// Heart, Solar Plexus, Root). Motor-to-Throat connectivity decides
// manifestation in the type classifier.
func (c Center) IsMotor() bool {
	switch c {
	case Sacral, Heart, SolarPlexus, Root:
		return true
	}
	return false
}
