package state

// Stepper tracks progress through an ordered multi-step flow.
type Stepper struct {
	steps     []string
	current   int
	completed []bool
}

// NewStepper creates a stepper positioned on the first step.
func NewStepper(steps ...string) *Stepper {
	return &Stepper{
		steps:     append([]string(nil), steps...),
		completed: make([]bool, len(steps)),
	}
}

// Steps returns the step names.
func (s *Stepper) Steps() []string {
	return append([]string(nil), s.steps...)
}

// Index returns the position of the current step.
func (s *Stepper) Index() int {
	return s.current
}

// Current returns the name of the current step, or "" for an empty flow.
func (s *Stepper) Current() string {
	if len(s.steps) == 0 {
		return ""
	}
	return s.steps[s.current]
}

// Next completes the current step and advances, staying on the last step.
func (s *Stepper) Next() int {
	if len(s.steps) == 0 {
		return 0
	}
	s.completed[s.current] = true
	if s.current < len(s.steps)-1 {
		s.current++
	}
	return s.current
}

// Back moves to the previous step, staying on the first step.
func (s *Stepper) Back() int {
	if s.current > 0 {
		s.current--
	}
	return s.current
}

// GoTo jumps to step i when it is completed or is the first incomplete step.
func (s *Stepper) GoTo(i int) bool {
	if i < 0 || i >= len(s.steps) {
		return false
	}
	if !s.completed[i] && i != s.firstIncomplete() {
		return false
	}
	s.current = i
	return true
}

func (s *Stepper) firstIncomplete() int {
	for i, done := range s.completed {
		if !done {
			return i
		}
	}
	return -1
}

// Completed reports whether step i has been completed.
func (s *Stepper) Completed(i int) bool {
	if i < 0 || i >= len(s.completed) {
		return false
	}
	return s.completed[i]
}

// Done reports whether every step has been completed.
func (s *Stepper) Done() bool {
	return len(s.steps) > 0 && s.firstIncomplete() == -1
}
