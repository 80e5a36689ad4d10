package rotate

// Tracker accumulates the signed number of degrees rotated while a
// direction is held. The total restarts whenever the direction changes.
type Tracker struct {
	dir     Direction
	active  bool
	degrees float64
}

// Add records one step of deg degrees in dir.
func (t *Tracker) Add(dir Direction, deg float64) {
	if t.active && t.dir != dir {
		t.degrees = 0
	}
	t.dir = dir
	t.active = true
	t.degrees += dir.sign() * deg
}

// Degrees returns the running total.
func (t *Tracker) Degrees() float64 {
	return t.degrees
}

// Release returns the running total and resets the tracker.
func (t *Tracker) Release() float64 {
	d := t.degrees
	*t = Tracker{}
	return d
}
