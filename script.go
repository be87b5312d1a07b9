package ballpit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep holds one run of identical key state.
type scriptStep struct {
	Keys  string `json:"keys"`
	Ticks int    `json:"ticks"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// InputScript replays recorded key state, one KeyState per tick. Keys are
// written as a string of the movement letters, e.g. "wd" for up and right,
// and an empty string releases every key.
//
//	{"steps": [{"keys": "w", "ticks": 30}, {"keys": "", "ticks": 60}]}
type InputScript struct {
	steps     []KeyState
	counts    []int
	cursor    int
	remaining int
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	s := &InputScript{}
	for i, st := range f.Steps {
		keys, err := parseKeys(st.Keys)
		if err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
		if st.Ticks <= 0 {
			return nil, fmt.Errorf("parse input script: step %d: ticks must be positive", i)
		}
		s.steps = append(s.steps, keys)
		s.counts = append(s.counts, st.Ticks)
	}
	s.remaining = s.counts[0]
	return s, nil
}

func parseKeys(s string) (KeyState, error) {
	var k KeyState
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'w':
			k.Up = true
		case 's':
			k.Down = true
		case 'a':
			k.Left = true
		case 'd':
			k.Right = true
		default:
			return KeyState{}, fmt.Errorf("unknown key %q", r)
		}
	}
	return k, nil
}

// Len returns the total number of ticks the script covers.
func (s *InputScript) Len() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// Done reports whether every step has been replayed.
func (s *InputScript) Done() bool {
	return s.cursor >= len(s.steps)
}

// Next returns the key state for the next tick. Once the script is done it
// returns an empty KeyState.
func (s *InputScript) Next() KeyState {
	if s.Done() {
		return KeyState{}
	}
	k := s.steps[s.cursor]
	s.remaining--
	if s.remaining == 0 {
		s.cursor++
		if s.cursor < len(s.steps) {
			s.remaining = s.counts[s.cursor]
		}
	}
	return k
}

// RunHeadless ticks sim with a fixed dt until script is done and returns the
// number of ticks run. A nil script runs a single tick with no input.
func RunHeadless(sim *Simulation, script *InputScript, dt float64) int {
	if script == nil {
		sim.Tick(KeyState{}, dt)
		return 1
	}
	n := 0
	for !script.Done() {
		sim.Tick(script.Next(), dt)
		n++
	}
	return n
}
