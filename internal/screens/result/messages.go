package result

// feedbackSentMsg is sent when a feedback submission completes.
type feedbackSentMsg struct {
	Err error
}
