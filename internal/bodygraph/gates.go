package bodygraph

import "fmt"

// gateCenter maps each of the 64 gates to the single center it belongs to.
// The map is total and non-overlapping; ValidateTables checks both at
// process start.
var gateCenter = map[int]Center{
	// Head
	64: Head, 61: Head, 63: Head,
	// Ajna
	47: Ajna, 24: Ajna, 4: Ajna, 17: Ajna, 43: Ajna, 11: Ajna,
	// Throat
	62: Throat, 23: Throat, 56: Throat, 31: Throat, 8: Throat, 33: Throat,
	20: Throat, 16: Throat, 12: Throat, 35: Throat, 45: Throat,
	// G
	7: G, 1: G, 13: G, 10: G, 2: G, 25: G, 15: G, 46: G,
	// Heart
	21: Heart, 51: Heart, 26: Heart, 40: Heart,
	// Sacral
	14: Sacral, 34: Sacral, 5: Sacral, 29: Sacral, 59: Sacral,
	27: Sacral, 42: Sacral, 3: Sacral, 9: Sacral,
	// Solar Plexus
	22: SolarPlexus, 36: SolarPlexus, 6: SolarPlexus, 37: SolarPlexus,
	55: SolarPlexus, 30: SolarPlexus, 49: SolarPlexus,
	// Spleen
	48: Spleen, 57: Spleen, 44: Spleen, 50: Spleen, 32: Spleen, 28: Spleen, 18: Spleen,
	// Root
	53: Root, 60: Root, 52: Root, 19: Root, 39: Root, 41: Root, 58: Root, 38: Root, 54: Root,
}

// CenterOf returns the center a gate belongs to.
func CenterOf(gate int) (Center, bool) {
	c, ok := gateCenter[gate]
	return c, ok
}

// GatesOf returns the gates belonging to a center, in ascending order.
func GatesOf(center Center) []int {
	var gates []int
	for g := 1; g <= 64; g++ {
		if gateCenter[g] == center && containsGate(g) {
			gates = append(gates, g)
		}
	}
	return gates
}

func containsGate(g int) bool {
	_, ok := gateCenter[g]
	return ok
}

// ValidateTables checks the structural constant data: the gate-to-center map
// must cover exactly gates 1..64, every channel endpoint must carry the
// center the gate map assigns it, and there must be exactly 36 distinct
// channels. An error here is a startup-fatal table defect, never a per-chart
// condition.
func ValidateTables() error {
	if len(gateCenter) != 64 {
		return fmt.Errorf("bodygraph: gate map has %d entries, want 64", len(gateCenter))
	}
	for g := 1; g <= 64; g++ {
		if _, ok := gateCenter[g]; !ok {
			return fmt.Errorf("bodygraph: gate %d unmapped", g)
		}
	}

	seen := make(map[string]bool, len(channelTable))
	for _, ch := range channelTable {
		if seen[ch.Key()] {
			return fmt.Errorf("bodygraph: channel %s listed twice", ch.Key())
		}
		seen[ch.Key()] = true

		if c, ok := gateCenter[ch.GateA]; !ok || c != ch.CenterA {
			return fmt.Errorf("bodygraph: channel %s: gate %d not in %s", ch.Key(), ch.GateA, ch.CenterA)
		}
		if c, ok := gateCenter[ch.GateB]; !ok || c != ch.CenterB {
			return fmt.Errorf("bodygraph: channel %s: gate %d not in %s", ch.Key(), ch.GateB, ch.CenterB)
		}
	}
	if len(seen) != 36 {
		return fmt.Errorf("bodygraph: %d channels, want 36", len(seen))
	}
	return nil
}
