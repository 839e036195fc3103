package quizscreen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/matrix/isotopes/internal/quiz"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/session"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/layout"
)

// QuizScreen runs the multiple-choice quiz. Progress lives in the session,
// so leaving the panel and coming back resumes where the learner left off.
type QuizScreen struct {
	sess  *session.Session
	delay time.Duration

	mc components.MultiChoice

	// feedback is the outcome of the last submission while it is on
	// screen. The quiz state has already advanced by then.
	feedback *quiz.Result
	answered int // 1-based number of the question feedback refers to
	seq      int

	restart components.Button
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz panel. Feedback stays up until a key press or until
// delay has passed; a zero delay waits for the key press.
func New(sess *session.Session, delay time.Duration) *QuizScreen {
	s := &QuizScreen{
		sess:  sess,
		delay: delay,
		restart: components.NewButton("Restart Quiz", true, func() tea.Cmd {
			return func() tea.Msg { return restartMsg{} }
		}),
	}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Nuclear Isotopes Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.finished():
		return []layout.KeyHint{{Key: "Enter", Description: "Restart"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "a-d", Description: "Answer"},
		}
	}
}

// ShowingFeedback reports whether the outcome of the last answer is on
// screen.
func (s *QuizScreen) ShowingFeedback() bool {
	return s.feedback != nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.feedback != nil && msg.seq == s.seq {
			s.dismissFeedback()
		}
		return s, nil

	case restartMsg:
		return s.handleRestart()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Feedback: any key moves on.
	if s.feedback != nil {
		s.dismissFeedback()
		return s, nil
	}

	if s.finished() {
		var cmd tea.Cmd
		s.restart, cmd = s.restart.Update(msg)
		return s, cmd
	}

	s.mc, _ = s.mc.Update(msg)
	if s.mc.Submitted {
		return s.submit(s.mc.ChosenIndex)
	}
	return s, nil
}

func (s *QuizScreen) submit(option int) (screen.Screen, tea.Cmd) {
	answered := s.sess.Quiz().CurrentIndex + 1
	res, err := s.sess.Answer(option)
	if err != nil {
		// The session has logged it; offer the question again.
		s.loadQuestion()
		return s, nil
	}

	s.mc.Reveal(res.Question.CorrectIndex)
	s.feedback = &res
	s.answered = answered
	s.seq++

	if s.delay <= 0 {
		return s, nil
	}
	seq := s.seq
	return s, tea.Tick(s.delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

func (s *QuizScreen) dismissFeedback() {
	s.feedback = nil
	s.loadQuestion()
}

func (s *QuizScreen) handleRestart() (screen.Screen, tea.Cmd) {
	if err := s.sess.Restart(); err != nil {
		return s, nil
	}
	s.feedback = nil
	s.loadQuestion()
	return s, nil
}

// loadQuestion resets the selector for the question awaiting an answer.
func (s *QuizScreen) loadQuestion() {
	q, ok := s.sess.CurrentQuestion()
	if !ok {
		s.mc = components.MultiChoice{}
		return
	}
	s.mc = components.NewMultiChoice(q.Prompt, q.Options[:])
}

func (s *QuizScreen) finished() bool {
	return s.sess.Quiz().Finished(len(s.sess.Questions()))
}
