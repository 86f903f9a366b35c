package rowan

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// Runner sequences scripted pointer actions across frames for automated
// testing of interaction flows. Call Step once per frame before
// Dispatcher.Step; each frame applies at most one action.
//
// Supported actions: "move" (x, y), "press", "release", "tap" (press this
// frame, release the next), and "wait" (frames).
type Runner struct {
	steps      []scriptStep
	cursor     int
	waitCount  int
	tapRelease bool
	done       bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*Runner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	for _, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "tap", "wait":
		default:
			return nil, fmt.Errorf("parse interaction script: unknown action %q", st.Action)
		}
	}
	return &Runner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Step advances the script by one frame, feeding the dispatcher.
func (r *Runner) Step(d *Dispatcher) {
	if r.done {
		return
	}
	// Finish a tap before advancing.
	if r.tapRelease {
		r.tapRelease = false
		d.Release()
		r.checkDone()
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		d.MovePointer(st.X, st.Y)
	case "press":
		d.Press()
	case "release":
		d.Release()
	case "tap":
		d.Press()
		r.tapRelease = true
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	r.checkDone()
}

func (r *Runner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.tapRelease {
		r.done = true
	}
}
