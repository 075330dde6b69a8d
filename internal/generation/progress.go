package generation

// Stage is one coarse progress update shown while a request is in flight.
// The percentages are cosmetic pacing for the loader, not a measurement of
// backend progress.
type Stage struct {
	Percent int
	Label   string
}

var stages = []Stage{
	{Percent: 10, Label: "Uploading your document..."},
	{Percent: 30, Label: "Extracting key concepts..."},
	{Percent: 70, Label: "Generating quiz, flashcards & notes..."},
	{Percent: 100, Label: "Done!"},
}

// Stages returns the fixed loader sequence in order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// Tracker walks the stage sequence monotonically. Advance never moves
// backwards and holds at the final stage once reached.
type Tracker struct {
	idx int
}

// NewTracker starts at the first stage.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Current reports the active stage.
func (t *Tracker) Current() Stage {
	return stages[t.idx]
}

// Advance moves to the next stage and reports whether the final stage has
// been reached.
func (t *Tracker) Advance() Stage {
	if t.idx < len(stages)-1 {
		t.idx++
	}
	return stages[t.idx]
}

// Done reports whether the tracker sits at the final stage.
func (t *Tracker) Done() bool {
	return t.idx == len(stages)-1
}
