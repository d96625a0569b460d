// Package contact handles the portfolio contact form: one attempt through the
// email relay, and a mailto hand-off whenever the relay is unconfigured or fails.
package contact

// Message is one contact form submission. It lives only for the duration of a
// single submission attempt.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Outcome is the status of the most recent submission as shown to the visitor.
type Outcome string

const (
	OutcomeIdle           Outcome = "idle"
	OutcomeSending        Outcome = "sending"
	OutcomeSent           Outcome = "sent"
	OutcomeFailedFallback Outcome = "failed-fallback"
)

// Status returns the text displayed next to the submit button.
func (o Outcome) Status() string {
	switch o {
	case OutcomeSending:
		return "Sending..."
	case OutcomeSent:
		return "Message sent, thank you!"
	case OutcomeFailedFallback:
		return "Failed to send the message. Opening mail client..."
	default:
		return ""
	}
}

// FallbackReason says why a submission was handed to the mail client.
type FallbackReason string

const (
	ReasonNotConfigured FallbackReason = "not-configured"
	ReasonRejected      FallbackReason = "rejected"
	ReasonTransport     FallbackReason = "transport"
)

// Fallback describes the mailto hand-off for a submission the relay did not deliver.
type Fallback struct {
	Reason    FallbackReason
	MailtoURL string
	// Err is the relay failure, nil for ReasonNotConfigured.
	Err error
}

// Result is either Sent (Fallback == nil) or FallbackInvoked.
type Result struct {
	Outcome  Outcome
	Fallback *Fallback
}

// Sent reports whether the relay accepted the message.
func (r Result) Sent() bool {
	return r.Fallback == nil && r.Outcome == OutcomeSent
}
