package storage

import "time"

// Outcome labels the terminal state of one handled message.
const (
	OutcomeReplied   = "replied"
	OutcomeRefused   = "refused"
	OutcomeCorrected = "corrected"
	OutcomeDegraded  = "degraded"
	OutcomeSilent    = "silent"
)

// Event is one handled exchange, recorded for audit only. The event
// log is never read back as conversation context.
type Event struct {
	Timestamp    time.Time `json:"timestamp"`
	Conversation string    `json:"conversation"`
	UserMessage  string    `json:"user_message"`
	BotResponse  string    `json:"bot_response,omitempty"`
	Outcome      string    `json:"outcome"`
}

// Recorder abstracts persistence of interaction events.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
}
