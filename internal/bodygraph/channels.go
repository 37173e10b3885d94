package bodygraph

import "fmt"

// Channel is a fixed pairing of two gates joining two centers. A channel is
// active when both of its gates are activated, regardless of line, body, or
// which activation set contributed each gate.
type Channel struct {
	GateA   int    `json:"gate_a"`
	GateB   int    `json:"gate_b"`
	CenterA Center `json:"-"`
	CenterB Center `json:"-"`
}

// Key returns the canonical "min-max" identifier, e.g. "20-34".
func (ch Channel) Key() string {
	a, b := ch.GateA, ch.GateB
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// Joins reports whether the channel connects centers x and y, in either
// orientation. x == y matches a self-connecting channel.
func (ch Channel) Joins(x, y Center) bool {
	return (ch.CenterA == x && ch.CenterB == y) || (ch.CenterA == y && ch.CenterB == x)
}

// channelTable lists the 36 channels of the bodygraph.
var channelTable = []Channel{
	// Head - Ajna
	{GateA: 64, GateB: 47, CenterA: Head, CenterB: Ajna},
	{GateA: 61, GateB: 24, CenterA: Head, CenterB: Ajna},
	{GateA: 63, GateB: 4, CenterA: Head, CenterB: Ajna},
	// Ajna - Throat
	{GateA: 17, GateB: 62, CenterA: Ajna, CenterB: Throat},
	{GateA: 43, GateB: 23, CenterA: Ajna, CenterB: Throat},
	{GateA: 11, GateB: 56, CenterA: Ajna, CenterB: Throat},
	// G - Throat
	{GateA: 7, GateB: 31, CenterA: G, CenterB: Throat},
	{GateA: 1, GateB: 8, CenterA: G, CenterB: Throat},
	{GateA: 13, GateB: 33, CenterA: G, CenterB: Throat},
	{GateA: 10, GateB: 20, CenterA: G, CenterB: Throat},
	// Throat - Spleen / Sacral / Solar Plexus / Heart
	{GateA: 16, GateB: 48, CenterA: Throat, CenterB: Spleen},
	{GateA: 20, GateB: 57, CenterA: Throat, CenterB: Spleen},
	{GateA: 20, GateB: 34, CenterA: Throat, CenterB: Sacral},
	{GateA: 12, GateB: 22, CenterA: Throat, CenterB: SolarPlexus},
	{GateA: 35, GateB: 36, CenterA: Throat, CenterB: SolarPlexus},
	{GateA: 45, GateB: 21, CenterA: Throat, CenterB: Heart},
	// G - Sacral / Heart / Spleen
	{GateA: 2, GateB: 14, CenterA: G, CenterB: Sacral},
	{GateA: 10, GateB: 34, CenterA: G, CenterB: Sacral},
	{GateA: 15, GateB: 5, CenterA: G, CenterB: Sacral},
	{GateA: 46, GateB: 29, CenterA: G, CenterB: Sacral},
	{GateA: 25, GateB: 51, CenterA: G, CenterB: Heart},
	{GateA: 10, GateB: 57, CenterA: G, CenterB: Spleen},
	// Heart - Spleen / Solar Plexus
	{GateA: 26, GateB: 44, CenterA: Heart, CenterB: Spleen},
	{GateA: 40, GateB: 37, CenterA: Heart, CenterB: SolarPlexus},
	// Sacral - Solar Plexus / Spleen / Root
	{GateA: 59, GateB: 6, CenterA: Sacral, CenterB: SolarPlexus},
	{GateA: 27, GateB: 50, CenterA: Sacral, CenterB: Spleen},
	{GateA: 34, GateB: 57, CenterA: Sacral, CenterB: Spleen},
	{GateA: 42, GateB: 53, CenterA: Sacral, CenterB: Root},
	{GateA: 3, GateB: 60, CenterA: Sacral, CenterB: Root},
	{GateA: 9, GateB: 52, CenterA: Sacral, CenterB: Root},
	// Spleen - Root
	{GateA: 18, GateB: 58, CenterA: Spleen, CenterB: Root},
	{GateA: 28, GateB: 38, CenterA: Spleen, CenterB: Root},
	{GateA: 32, GateB: 54, CenterA: Spleen, CenterB: Root},
	// Root - Solar Plexus
	{GateA: 39, GateB: 55, CenterA: Root, CenterB: SolarPlexus},
	{GateA: 41, GateB: 30, CenterA: Root, CenterB: SolarPlexus},
	{GateA: 19, GateB: 49, CenterA: Root, CenterB: SolarPlexus},
}

// Channels returns the full channel table. The slice is freshly allocated.
func Channels() []Channel {
	out := make([]Channel, len(channelTable))
	copy(out, channelTable)
	return out
}
