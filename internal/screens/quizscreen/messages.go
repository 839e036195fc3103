package quizscreen

// feedbackDoneMsg is sent when the feedback display period ends. seq ties
// it to the submission that started the timer so stale ticks are ignored.
type feedbackDoneMsg struct {
	seq int
}

// restartMsg is sent when the restart button is pressed.
type restartMsg struct{}
