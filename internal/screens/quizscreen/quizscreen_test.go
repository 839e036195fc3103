package quizscreen

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(delay time.Duration) (*QuizScreen, *session.Session) {
	log, _ := test.NewNullLogger()
	sess := session.New(log)
	return New(sess, delay), sess
}

// answerAll submits option letters and dismisses each feedback with a key.
func answerAll(s *QuizScreen, letters string) {
	for _, r := range letters {
		s.Update(keyPress(r))
		s.Update(keyPress(' '))
	}
}

func TestQuizScreen_InitialView(t *testing.T) {
	s, _ := testQuizScreen(0)
	out := s.View(100, 40)

	if !strings.Contains(out, "Question 1/3") {
		t.Errorf("expected question counter, got:\n%s", out)
	}
	if !strings.Contains(out, "research reactors") {
		t.Error("expected first prompt")
	}
}

func TestQuizScreen_CorrectAnswerShowsFeedback(t *testing.T) {
	s, sess := testQuizScreen(0)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	qs := scr.(*QuizScreen)

	if !qs.ShowingFeedback() {
		t.Fatal("expected feedback after answering")
	}
	if st := sess.Quiz(); st.Score != 1 || st.CurrentIndex != 1 {
		t.Errorf("state = %+v, want score 1 index 1", st)
	}
	out := qs.View(100, 40)
	if !strings.Contains(out, "Correct!") {
		t.Error("expected Correct! feedback")
	}
	if !strings.Contains(out, "Question 1/3") {
		t.Error("feedback should refer to the answered question")
	}
}

func TestQuizScreen_IncorrectAnswer(t *testing.T) {
	s, sess := testQuizScreen(0)
	s.Update(keyPress('a'))

	if st := sess.Quiz(); st.Score != 0 || st.CurrentIndex != 1 {
		t.Errorf("state = %+v, want score 0 index 1", st)
	}
	out := s.View(100, 40)
	if !strings.Contains(out, "Incorrect!") {
		t.Error("expected Incorrect! feedback")
	}
	if !strings.Contains(out, "Correct answer: 40%") {
		t.Error("expected the correct option to be named")
	}
}

func TestQuizScreen_ArrowsAndEnter(t *testing.T) {
	s, sess := testQuizScreen(0)
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	if sess.Quiz().Score != 1 {
		t.Errorf("score = %d, want 1", sess.Quiz().Score)
	}
}

func TestQuizScreen_KeyDismissesFeedback(t *testing.T) {
	s, _ := testQuizScreen(time.Hour)
	s.Update(keyPress('b'))
	s.Update(keyPress(' '))

	if s.ShowingFeedback() {
		t.Fatal("expected feedback to be dismissed")
	}
	if !strings.Contains(s.View(100, 40), "Question 2/3") {
		t.Error("expected the second question")
	}
}

func TestQuizScreen_FeedbackTimer(t *testing.T) {
	s, _ := testQuizScreen(time.Millisecond)
	_, cmd := s.Update(keyPress('b'))
	if cmd == nil {
		t.Fatal("expected a feedback timer")
	}

	// A tick from an earlier submission is ignored.
	s.Update(feedbackDoneMsg{seq: s.seq - 1})
	if !s.ShowingFeedback() {
		t.Fatal("stale tick dismissed feedback")
	}

	s.Update(cmd())
	if s.ShowingFeedback() {
		t.Error("expected the timer to dismiss feedback")
	}
}

func TestQuizScreen_ZeroDelayWaitsForKey(t *testing.T) {
	s, _ := testQuizScreen(0)
	_, cmd := s.Update(keyPress('b'))
	if cmd != nil {
		t.Error("expected no timer with zero delay")
	}
}

func TestQuizScreen_FinishAndRestart(t *testing.T) {
	s, sess := testQuizScreen(0)
	answerAll(s, "bbc")

	if !sess.Quiz().Finished(len(sess.Questions())) {
		t.Fatal("expected the quiz to be finished")
	}
	out := s.View(100, 40)
	if !strings.Contains(out, "Quiz Completed!") || !strings.Contains(out, "3/3") {
		t.Errorf("unexpected finished view:\n%s", out)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected restart command")
	}
	s.Update(cmd())

	if st := sess.Quiz(); st.Score != 0 || st.CurrentIndex != 0 {
		t.Errorf("state after restart = %+v", st)
	}
	if !strings.Contains(s.View(100, 40), "Question 1/3") {
		t.Error("expected the first question after restart")
	}
}

func TestQuizScreen_ResumesFromSession(t *testing.T) {
	s, sess := testQuizScreen(0)
	answerAll(s, "a")

	// A fresh panel over the same session picks up at question 2.
	again := New(sess, 0)
	if !strings.Contains(again.View(100, 40), "Question 2/3") {
		t.Error("expected progress to survive rebuilding the panel")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _ := testQuizScreen(0)
	if got := s.KeyHints()[1].Description; got != "Submit" {
		t.Errorf("asking hint = %q", got)
	}
	s.Update(keyPress('a'))
	if got := s.KeyHints()[0].Description; got != "Continue" {
		t.Errorf("feedback hint = %q", got)
	}
}
