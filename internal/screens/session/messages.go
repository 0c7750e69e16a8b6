package session

import "time"

// timerTickMsg is sent every second to update the elapsed clock.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the feedback panel.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent after the last question to grade the test.
type sessionEndMsg struct{}
