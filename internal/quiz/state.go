package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrQuizFinished   = errors.New("quiz already finished")
	ErrQuizInProgress = errors.New("quiz still in progress")
	ErrInvalidOption  = errors.New("option out of range")
)

// Phase is the externally visible phase of a quiz run.
type Phase int

const (
	PhaseAsking   Phase = iota // a question is awaiting an answer
	PhaseFinished              // every question has been answered
)

func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the progress of one quiz run. It is a value: transitions
// return a new State and never mutate their input.
type State struct {
	Score        int
	CurrentIndex int
}

// NewState returns the initial state: first question, no points.
func NewState() State {
	return State{}
}

// Phase returns the phase of s for a quiz of total questions.
func (s State) Phase(total int) Phase {
	if s.CurrentIndex >= total {
		return PhaseFinished
	}
	return PhaseAsking
}

// Finished reports whether every one of total questions has been answered.
func (s State) Finished(total int) bool {
	return s.Phase(total) == PhaseFinished
}

// Result describes the outcome of a single submission.
type Result struct {
	Question Question
	Chosen   int
	Correct  bool
}

// Submit answers the current question with option. The score grows by one
// only when option matches the question's CorrectIndex; CurrentIndex always
// advances by one. Submitting after the last question is a contract
// violation and returns ErrQuizFinished with s unchanged.
func Submit(qs []Question, s State, option int) (State, Result, error) {
	if s.Finished(len(qs)) {
		return s, Result{}, fmt.Errorf("submit answer %d: %w", option, ErrQuizFinished)
	}

	q := qs[s.CurrentIndex]
	if option < 0 || option >= len(q.Options) {
		return s, Result{}, fmt.Errorf("submit answer %d to question %d: %w", option, s.CurrentIndex+1, ErrInvalidOption)
	}

	res := Result{Question: q, Chosen: option, Correct: option == q.CorrectIndex}
	next := State{Score: s.Score, CurrentIndex: s.CurrentIndex + 1}
	if res.Correct {
		next.Score++
	}
	return next, res, nil
}

// Restart begins a new run. It is only valid once the quiz is finished;
// otherwise it returns ErrQuizInProgress with s unchanged.
func Restart(qs []Question, s State) (State, error) {
	if !s.Finished(len(qs)) {
		return s, fmt.Errorf("restart at question %d: %w", s.CurrentIndex+1, ErrQuizInProgress)
	}
	return NewState(), nil
}
