// Package popup holds the toolkit-free parts of the transient widgets: the
// pick animation's timeline and the format menu's layout.
package popup

// Timeline counts animation frames and runs its completion callback once.
type Timeline struct {
	frames   int
	frame    int
	done     func()
	finished bool
}

// NewTimeline lasts frames ticks; frames < 1 is treated as 1.
func NewTimeline(frames int, done func()) *Timeline {
	if frames < 1 {
		frames = 1
	}
	return &Timeline{frames: frames, done: done}
}

// Step advances one frame and reports whether the animation is still
// running afterwards. The callback fires on the step that reaches the end.
func (t *Timeline) Step() bool {
	if t.finished {
		return false
	}
	t.frame++
	if t.frame < t.frames {
		return true
	}
	t.finished = true
	if t.done != nil {
		t.done()
	}
	return false
}

func (t *Timeline) Finished() bool { return t.finished }

// Progress runs from 0 before the first step to 1 at the end.
func (t *Timeline) Progress() float64 {
	return float64(t.frame) / float64(t.frames)
}

// EaseOut decelerates towards the end.
func EaseOut(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	q := 1 - p
	return 1 - q*q*q
}

func Lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
