package orbital

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// HistoryEntry is one tick of propagated state, as streamed to the exporter.
type HistoryEntry struct {
	T        float64 // elapsed sim time, s
	R, V     []float64
	Elements Elements
}

// StreamStates drains the state history channel and writes one CSV row per
// tick. It returns when the channel is closed. Run it in its own goroutine,
// the way the engine's host owns the file handle.
func StreamStates(w io.Writer, states <-chan HistoryEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"t", "x", "y", "z", "vx", "vy", "vz", "a", "e", "i"}); err != nil {
		return err
	}
	for entry := range states {
		a, e, i, _, _, _ := entry.Elements.Elements()
		row := []string{
			fmt.Sprintf("%f", entry.T),
			fmt.Sprintf("%f", entry.R[0]), fmt.Sprintf("%f", entry.R[1]), fmt.Sprintf("%f", entry.R[2]),
			fmt.Sprintf("%f", entry.V[0]), fmt.Sprintf("%f", entry.V[1]), fmt.Sprintf("%f", entry.V[2]),
			fmt.Sprintf("%f", a), fmt.Sprintf("%f", e), fmt.Sprintf("%f", i),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WireState is the replicated field set: enough for a remote observer to
// reconstruct the orbit shape without re-deriving it. The transport carrying
// these bytes is the host's concern.
type WireState struct {
	Position      [3]float64 `json:"position"`
	Velocity      [3]float64 `json:"velocity"`
	SemiMajorAxis float64    `json:"semiMajorAxis"`
	Eccentricity  float64    `json:"eccentricity"`
	Inclination   float64    `json:"inclination"`
}

// Serialize returns the engine's current wire state as JSON.
func (e *Engine) Serialize() ([]byte, error) {
	a, ecc, i, _, _, _ := e.elements.Elements()
	w := WireState{
		SemiMajorAxis: a,
		Eccentricity:  ecc,
		Inclination:   i,
	}
	copy(w.Position[:], e.state.R)
	copy(w.Velocity[:], e.state.V)
	return json.Marshal(w)
}

// DeserializeWireState parses a wire state previously produced by Serialize.
func DeserializeWireState(data []byte) (WireState, error) {
	var w WireState
	if err := json.Unmarshal(data, &w); err != nil {
		return WireState{}, fmt.Errorf("could not parse wire state: %s", err)
	}
	return w, nil
}
