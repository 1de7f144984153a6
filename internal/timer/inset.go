package timer

// InSetState describes the countdown of one timed set
type InSetState struct {
	ExerciseIndex int
	SetIndex      int
	SecondsLeft   int
	Duration      int
}

// InSet is the countdown of the timed set being performed. At most one
// exists; starting another discards the previous one without logging it.
type InSet struct {
	current *InSetState
}

// NewInSet creates an idle in-set timer
func NewInSet() *InSet {
	return &InSet{}
}

// Start begins counting down duration seconds for the given set
func (t *InSet) Start(exerciseIndex, setIndex, duration int) {
	t.current = &InSetState{
		ExerciseIndex: exerciseIndex,
		SetIndex:      setIndex,
		SecondsLeft:   duration,
		Duration:      duration,
	}
}

// Cancel drops the running countdown, if any
func (t *InSet) Cancel() {
	t.current = nil
}

// State returns the running countdown
func (t *InSet) State() (InSetState, bool) {
	if t.current == nil {
		return InSetState{}, false
	}
	return *t.current, true
}

// Tick advances the countdown by one second. When the last second passes
// the timer deactivates and the expired countdown is returned.
func (t *InSet) Tick() (InSetState, bool) {
	if t.current == nil {
		return InSetState{}, false
	}
	if t.current.SecondsLeft <= 1 {
		expired := *t.current
		expired.SecondsLeft = 0
		t.current = nil
		return expired, true
	}
	t.current.SecondsLeft--
	return InSetState{}, false
}
