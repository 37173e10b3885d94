package bodygraph

import "encoding/json"

// MarshalJSON encodes the center as its catalog key.
func (c Center) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Key() + `"`), nil
}

// MarshalJSON encodes the channel with its canonical key alongside the two
// gates and the centers it joins.
func (ch Channel) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key     string `json:"key"`
		GateA   int    `json:"gate_a"`
		GateB   int    `json:"gate_b"`
		CenterA string `json:"center_a"`
		CenterB string `json:"center_b"`
	}{ch.Key(), ch.GateA, ch.GateB, ch.CenterA.Key(), ch.CenterB.Key()})
}
