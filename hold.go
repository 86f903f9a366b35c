package rowan

// holdTask is the resumable unit of work bound to one activation. It is
// created when OnInteractStart fires and discarded when OnInteractEnd fires;
// cancellation is expressed by dropping the task, never by signalling into
// suspended code. The dispatcher advances it by exactly one tick per frame.
type holdTask struct {
	// startFrame is the dispatcher frame the activation began on. The
	// task suspends until the next frame: no tick runs on startFrame.
	startFrame uint64
	frame      int
	elapsed    float64
}

// tick advances the task by one frame and reports its progress.
func (h *holdTask) tick(dt float64) (frame int, elapsed float64) {
	h.frame++
	h.elapsed += dt
	return h.frame, h.elapsed
}
