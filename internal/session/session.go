package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/matrix/isotopes/internal/panel"
	"github.com/matrix/isotopes/internal/quiz"
)

// Session holds everything that lives for one user's interaction sequence:
// the quiz progress and the logger tagged with the session ID. Screens read
// and mutate quiz progress only through it.
type Session struct {
	ID        string
	questions []quiz.Question
	quiz      quiz.State
	log       logrus.FieldLogger
}

// New starts a session with a fresh quiz.
func New(log logrus.FieldLogger) *Session {
	id := uuid.New().String()
	return &Session{
		ID:        id,
		questions: quiz.Questions(),
		quiz:      quiz.NewState(),
		log:       log.WithField("session_id", id),
	}
}

// Log returns the session-scoped logger.
func (s *Session) Log() logrus.FieldLogger {
	return s.log
}

// Questions returns the quiz questions for this session.
func (s *Session) Questions() []quiz.Question {
	return s.questions
}

// Quiz returns the current quiz state.
func (s *Session) Quiz() quiz.State {
	return s.quiz
}

// CurrentQuestion returns the question awaiting an answer, or false once
// the quiz is finished.
func (s *Session) CurrentQuestion() (quiz.Question, bool) {
	if s.quiz.Finished(len(s.questions)) {
		return quiz.Question{}, false
	}
	return s.questions[s.quiz.CurrentIndex], true
}

// Answer submits option for the current question.
func (s *Session) Answer(option int) (quiz.Result, error) {
	next, res, err := quiz.Submit(s.questions, s.quiz, option)
	if err != nil {
		s.logViolation("answer", err)
		return quiz.Result{}, err
	}
	s.quiz = next

	s.log.WithFields(logrus.Fields{
		"question": next.CurrentIndex,
		"chosen":   option,
		"correct":  res.Correct,
		"score":    next.Score,
	}).Info("quiz answer submitted")

	if next.Finished(len(s.questions)) {
		s.log.WithFields(logrus.Fields{
			"score": next.Score,
			"total": len(s.questions),
		}).Info("quiz finished")
	}
	return res, nil
}

// Restart resets the quiz once it is finished.
func (s *Session) Restart() error {
	next, err := quiz.Restart(s.questions, s.quiz)
	if err != nil {
		s.logViolation("restart", err)
		return err
	}
	s.quiz = next
	s.log.Info("quiz restarted")
	return nil
}

// PanelSelected records a navigation event.
func (s *Session) PanelSelected(id panel.ID) {
	s.log.WithField("panel", id.Label()).Debug("panel selected")
}

func (s *Session) logViolation(action string, err error) {
	entry := s.log.WithError(err).WithFields(logrus.Fields{
		"action":   action,
		"question": s.quiz.CurrentIndex,
		"score":    s.quiz.Score,
	})
	if errors.Is(err, quiz.ErrQuizFinished) || errors.Is(err, quiz.ErrQuizInProgress) {
		entry.Error("quiz transition out of phase")
		return
	}
	entry.Warn("quiz answer rejected")
}
