package briefing

import "errors"

const (
	FirstStep = 1
	LastStep  = 5

	// ServiceStep is the only step guarded by a required field.
	ServiceStep = 3
)

var ErrUnknownField = errors.New("unknown briefing field")

// CanAdvance is the single rule behind both the "next" control and Advance.
func CanAdvance(step int, a Answers) bool {
	if step < FirstStep || step >= LastStep {
		return false
	}
	if step == ServiceStep && !a.HasService() {
		return false
	}
	return true
}

func CanRetreat(step int) bool {
	return step > FirstStep && step <= LastStep
}

// BlockedHint names the field that keeps the user on the current step, or
// returns false when nothing is blocking.
func BlockedHint(step int, a Answers) (Field, bool) {
	if step == ServiceStep && !a.HasService() {
		return FieldService, true
	}
	return 0, false
}

// Form is the state of one briefing: the answers and the current step.
// It is not safe for concurrent use.
type Form struct {
	step    int
	answers Answers
}

func NewForm() *Form {
	return &Form{step: FirstStep}
}

func (f *Form) Step() int {
	return f.step
}

// Answers returns a copy, so the caller can freeze it for generation.
func (f *Form) Answers() Answers {
	return f.answers
}

func (f *Form) SetField(field Field, value string) {
	f.answers.Set(field, value)
}

func (f *Form) CanAdvance() bool {
	return CanAdvance(f.step, f.answers)
}

func (f *Form) CanRetreat() bool {
	return CanRetreat(f.step)
}

// CanSubmit is true only on the last step.
func (f *Form) CanSubmit() bool {
	return f.step == LastStep
}

// Advance moves one step forward when allowed and reports whether it moved.
func (f *Form) Advance() bool {
	if !f.CanAdvance() {
		return false
	}
	f.step++
	return true
}

// Retreat moves one step back when allowed and reports whether it moved.
func (f *Form) Retreat() bool {
	if !f.CanRetreat() {
		return false
	}
	f.step--
	return true
}

func (f *Form) Reset() {
	f.step = FirstStep
	f.answers = Answers{}
}
