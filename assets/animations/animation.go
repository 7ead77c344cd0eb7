package animations

// Animation steps through Count frames at FPS frames per second of
// simulated time. The timer restarts on every step, so a long tick never
// skips frames.
type Animation struct {
	Count            int
	FPS              float64
	timer            float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the timer by dt and reports whether the frame changed.
func (a *Animation) Update(dt float64) bool {
	if a.Count <= 0 || a.FPS <= 0 {
		return false
	}
	a.timer += dt
	if a.timer < 1.0/a.FPS {
		return false
	}
	a.timer = 0

	if a.FreezeOnComplete && a.frame >= a.Count-1 {
		a.frame = a.Count - 1
		a.Looped = true
		return false
	}

	a.frame++
	if a.frame >= a.Count {
		a.Looped = true
		// loop back to the beginning
		a.frame = 0
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to idx without touching the timer.
func (a *Animation) SetFrame(idx int) {
	a.frame = idx
}

// Timer is the time accumulated toward the next step.
func (a *Animation) Timer() float64 {
	return a.timer
}

// Hold resets the step timer so the current frame stays up.
func (a *Animation) Hold() {
	a.timer = 0
}

func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
	a.Looped = false
}

// Reconfigure switches the animation to a new sequence and restarts it.
func (a *Animation) Reconfigure(count int, fps float64, freeze bool) {
	a.Count = count
	a.FPS = fps
	a.FreezeOnComplete = freeze
	a.Restart()
}

func NewAnimation(count int, fps float64) *Animation {
	return &Animation{
		Count: count,
		FPS:   fps,
	}
}
