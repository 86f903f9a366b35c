package rowan

import "testing"

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty script")
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "teleport"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestScriptedInteraction(t *testing.T) {
	script := []byte(`{
		"steps": [
			{"action": "move", "x": 50, "y": 50},
			{"action": "press"},
			{"action": "wait", "frames": 3},
			{"action": "release"},
			{"action": "move", "x": 500, "y": 500}
		]
	}`)
	runner, err := LoadScript(script)
	if err != nil {
		t.Fatal(err)
	}

	ix := NewShapeIndex()
	id := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)

	var log []string
	d := NewDispatcher(ix, LayerAll)
	d.Register(id, &recorder{name: "a", log: &log})

	for i := 0; i < 100 && !runner.Done(); i++ {
		runner.Step(d)
		d.Step(dt)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}

	want := []string{
		"highlight:a",
		"start:a",
		"hold:a:1", "hold:a:2", "hold:a:3",
		"end:a:0", // EndReleased
		"unhighlight:a",
	}
	assertLog(t, log, want)
}

func TestScriptTap(t *testing.T) {
	script := []byte(`{
		"steps": [
			{"action": "move", "x": 50, "y": 50},
			{"action": "tap"}
		]
	}`)
	runner, err := LoadScript(script)
	if err != nil {
		t.Fatal(err)
	}

	ix := NewShapeIndex()
	id := ix.Add(HitRect{Width: 100, Height: 100}, 0, 0, 1)

	var log []string
	d := NewDispatcher(ix, LayerAll)
	d.Register(id, &recorder{name: "a", log: &log})

	frames := 0
	for !runner.Done() {
		runner.Step(d)
		d.Step(dt)
		frames++
		if frames > 10 {
			t.Fatal("runner did not finish")
		}
	}

	// Tap spans two frames: press on one, release on the next. The
	// release is consumed before the hold's first tick would run, so a
	// tap is a pure start/end pair with no hold ticks.
	want := []string{
		"highlight:a",
		"start:a",
		"end:a:0",
	}
	assertLog(t, log, want)
}

func TestScriptStepAfterDone(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "press"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d := NewDispatcher(NewShapeIndex(), LayerAll)

	runner.Step(d)
	if !runner.Done() {
		t.Fatal("single-step script should be done after one Step")
	}
	runner.Step(d) // no panic, no effect
	d.Step(dt)
}
