package session

import "time"

// attemptStartedMsg is sent once the attempt start event has been persisted.
type attemptStartedMsg struct {
	Err error
}

// timerTickMsg is sent every second to update the elapsed display.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the feedback overlay.
type feedbackDoneMsg struct{}

// attemptEndMsg is sent to trigger the attempt end flow.
type attemptEndMsg struct{}
